package identity

import (
	"strings"
	"testing"

	"github.com/Bataa715/Audit/config"
)

func testGenerator() *Generator {
	return NewGenerator(&config.IdentityConfig{
		DepartmentCodes: map[string]string{
			"Удирдлага":          "DAG",
			"Дата анализын алба": "DAA",
			"Ерөнхий аудитын хэлтэс": "EAH",
			"Зайны аудит чанарын баталгаажуулалтын хэлтэс": "ZAGCHBH",
			"Мэдээллийн технологийн аудитын хэлтэс":        "MTAH",
		},
		DefaultCode:          "USR",
		OrgPrefix:            "DAG",
		ManagementDepartment: "Удирдлага",
		AnalyticsDepartment:  "Дата анализын алба",
	})
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"бат-эрдэнэ", "Бат-Эрдэнэ"},
		{"сараа", "Сараа"},
		{"САРАА", "Сараа"},
		{"бат эрдэнэ", "БатЭрдэнэ"},
		{" оюунаа ", "Оюунаа"},
		{"anna-maria", "Anna-Maria"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUserID_Formats(t *testing.T) {
	g := testGenerator()

	tests := []struct {
		department string
		name       string
		want       string
	}{
		{"Удирдлага", "бат-эрдэнэ", ".Бат-Эрдэнэ-DAG"},
		{"Дата анализын алба", "сараа", "DAA-Сараа"},
		{"Ерөнхий аудитын хэлтэс", "оюунаа", "DAG-EAH-Оюунаа"},
		{"Мэдээллийн технологийн аудитын хэлтэс", "билгүүн", "DAG-MTAH-Билгүүн"},
		{"Тамгын газар", "сараа", "DAG-USR-Сараа"}, // unknown department falls back
	}
	for _, tt := range tests {
		if got := g.UserID(tt.department, tt.name); got != tt.want {
			t.Errorf("UserID(%q, %q) = %q, want %q", tt.department, tt.name, got, tt.want)
		}
	}
}

func TestUserID_Deterministic(t *testing.T) {
	g := testGenerator()
	a := g.UserID("Ерөнхий аудитын хэлтэс", "бат-эрдэнэ")
	b := g.UserID("Ерөнхий аудитын хэлтэс", "бат-эрдэнэ")
	if a != b {
		t.Errorf("UserID is not deterministic: %q != %q", a, b)
	}
}

func TestPrefix_MatchesGeneratedID(t *testing.T) {
	g := testGenerator()

	departments := []string{
		"Удирдлага",
		"Дата анализын алба",
		"Ерөнхий аудитын хэлтэс",
		"Зайны аудит чанарын баталгаажуулалтын хэлтэс",
		"Мэдээллийн технологийн аудитын хэлтэс",
		"Огт мэдэгдэхгүй хэлтэс",
	}
	for _, dept := range departments {
		id := g.UserID(dept, "сараа")
		prefix := g.Prefix(dept)
		if !strings.HasPrefix(id, prefix) {
			t.Errorf("department %q: id %q does not start with prefix %q", dept, id, prefix)
		}
	}
}
