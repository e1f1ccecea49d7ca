package catalog

import "testing"

func TestDefaultCatalogParses(t *testing.T) {
	cat := Default()

	if len(cat.Symptoms["失眠"]) == 0 {
		t.Fatalf("expected symptom 失眠 in default catalog")
	}
	if len(cat.Fallback) != 3 {
		t.Fatalf("expected 3 fallback supplements, got %d", len(cat.Fallback))
	}
	if cat.Fallback[0] != "綜合維他命" {
		t.Fatalf("expected fallback to start with 綜合維他命, got %q", cat.Fallback[0])
	}
}

func TestConditionEntryVariants(t *testing.T) {
	cat := Default()

	flat, ok := cat.Conditions["乾眼症"]
	if !ok {
		t.Fatalf("expected condition 乾眼症")
	}
	if flat.Nested() {
		t.Fatalf("expected 乾眼症 to be a flat entry")
	}

	nested, ok := cat.Conditions["長時間使用電腦"]
	if !ok {
		t.Fatalf("expected condition 長時間使用電腦")
	}
	if !nested.Nested() {
		t.Fatalf("expected 長時間使用電腦 to be a nested entry")
	}
	if nested.Groups[0].Name != "眼睛保養" {
		t.Fatalf("expected first group 眼睛保養, got %q", nested.Groups[0].Name)
	}
}

func TestParseRejectsAmbiguousCondition(t *testing.T) {
	raw := []byte(`
conditions:
  broken:
    supplements: [甲]
    groups:
      - name: sub
        supplements: [乙]
defaultDosage:
  dosage: d
  usage: u
fallback: [甲]
`)
	if _, err := Parse(raw); err == nil {
		t.Fatalf("expected validation error for condition with both forms")
	}
}

func TestParseRejectsMissingFallback(t *testing.T) {
	raw := []byte(`
defaultDosage:
  dosage: d
  usage: u
`)
	if _, err := Parse(raw); err == nil {
		t.Fatalf("expected validation error for empty fallback")
	}
}

func TestDosageForKeywordOrderAndDefault(t *testing.T) {
	cat := &Catalog{
		DosageRules: []DosageRule{
			{Keyword: "鈣", Dosage: "first", Usage: "first-usage"},
			{Keyword: "鈣鎂", Dosage: "second", Usage: "second-usage"},
		},
		DefaultDosage: DosagePair{Dosage: "default", Usage: "default-usage"},
		Fallback:      []string{"x"},
	}

	got := cat.DosageFor("鈣鎂錠")
	if got.Dosage != "first" {
		t.Fatalf("expected first matching rule to win, got %q", got.Dosage)
	}

	got = cat.DosageFor("不知名保健品")
	if got.Dosage != "default" || got.Usage != "default-usage" {
		t.Fatalf("expected default pair, got %+v", got)
	}
}

func TestDosageForIsCaseInsensitive(t *testing.T) {
	cat := &Catalog{
		DosageRules:   []DosageRule{{Keyword: "opc", Dosage: "opc-dose", Usage: "opc-usage"}},
		DefaultDosage: DosagePair{Dosage: "default", Usage: "default"},
		Fallback:      []string{"x"},
	}
	if got := cat.DosageFor("OPC葡萄籽"); got.Dosage != "opc-dose" {
		t.Fatalf("expected case-insensitive keyword match, got %+v", got)
	}
}
