package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Bataa715/Audit/internal/dto"
)

func TestUserUpdate_PartialFields(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	resp := signupUser(t, svc, "Сараа", "Ерөнхий аудитын хэлтэс", "Passw0rd!")

	position := "Ахлах аудитор"
	updated, err := svc.User.Update(ctx, resp.User.ID, &dto.UpdateUserRequest{Position: &position})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Position != "Ахлах аудитор" {
		t.Errorf("Position = %q, want Ахлах аудитор", updated.Position)
	}
	// untouched fields survive
	if updated.Name != "Сараа" {
		t.Errorf("Name = %q, want Сараа", updated.Name)
	}
}

func TestUserUpdate_UnknownDepartment(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	resp := signupUser(t, svc, "Сараа", "Ерөнхий аудитын хэлтэс", "Passw0rd!")

	bogus := "no-such-dept"
	_, err := svc.User.Update(ctx, resp.User.ID, &dto.UpdateUserRequest{DepartmentID: &bogus})
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound, got: %v", err)
	}
}

func TestUserStatus_DisableBlocksLogin(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	resp := signupUser(t, svc, "Сараа", "Ерөнхий аудитын хэлтэс", "Passw0rd!")

	inactive := false
	if _, err := svc.User.UpdateStatus(ctx, resp.User.ID, inactive); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	_, err := svc.Auth.LoginByID(ctx, &dto.LoginByIDRequest{
		UserID:   resp.User.UserID,
		Password: "Passw0rd!",
	})
	if !errors.Is(err, ErrUserInactive) {
		t.Errorf("expected ErrUserInactive, got: %v", err)
	}
}

func TestUserDelete_MissingUser(t *testing.T) {
	svc, _ := testService()

	err := svc.User.Delete(context.Background(), "no-such-user")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func importWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("SetCellValue failed: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf
}

func TestImport_CreatesPendingUsersAndReportsBadRows(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	buf := importWorkbook(t, [][]interface{}{
		{"Нэр", "Хэлтэс", "Албан тушаал"},
		{"Сараа", "Ерөнхий аудитын хэлтэс", "Аудитор"},
		{"", "Ерөнхий аудитын хэлтэс", "Аудитор"}, // no name
		{"Бат", "Дата анализын алба", "Шинжээч"},
	})

	resp, err := svc.User.Import(ctx, buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if resp.Created != 2 || resp.Failed != 1 {
		t.Fatalf("created/failed = %d/%d, want 2/1", resp.Created, resp.Failed)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Row != 3 {
		t.Errorf("errors = %+v, want one error on row 3", resp.Errors)
	}

	// imported users are pending, not logged in
	check, err := svc.Auth.CheckUser(ctx, &dto.CheckUserRequest{UserID: "DAA-Бат"})
	if err != nil {
		t.Fatalf("CheckUser failed: %v", err)
	}
	if !check.Exists || check.HasPassword {
		t.Errorf("imported user: %+v, want pending registration", check)
	}
}

func TestImport_DuplicateRowRejected(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	signupUser(t, svc, "Сараа", "Ерөнхий аудитын хэлтэс", "Passw0rd!")

	buf := importWorkbook(t, [][]interface{}{
		{"Name", "Department", "Position"},
		{"Сараа", "Ерөнхий аудитын хэлтэс", "Аудитор"},
	})

	resp, err := svc.User.Import(ctx, buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if resp.Created != 0 || resp.Failed != 1 {
		t.Errorf("created/failed = %d/%d, want 0/1", resp.Created, resp.Failed)
	}
}

func TestExport_ProducesWorkbook(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	signupUser(t, svc, "Сараа", "Ерөнхий аудитын хэлтэс", "Passw0rd!")

	buf, filename, err := svc.User.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filename == "" {
		t.Error("expected a filename")
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("exported workbook unreadable: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Ажилтнууд")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 2 { // header + one user
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1][1] != "DAG-EAH-Сараа" {
		t.Errorf("exported ID = %q, want DAG-EAH-Сараа", rows[1][1])
	}
}
