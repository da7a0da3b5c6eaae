package parsing

import (
	"os"
	"testing"
)

func checkField(t *testing.T, fieldName, expected, actual string) {
	if expected == actual {
		t.Logf("%s is correct", fieldName)
	} else {
		t.Errorf("%s is incorrect: got %q, want %q", fieldName, actual, expected)
	}
}

func TestFormatIEEEReferenceFull(t *testing.T) {
	data := &ReferenceData{
		DOI:     "10.1000/example",
		Title:   "An Example Study",
		Authors: []string{"J. Doe", "A. Smith", "B. Jones"},
		Journal: "Journal of Examples",
		Volume:  "12",
		Issue:   "3",
		Pages:   "45-67",
		Year:    "2017",
	}
	want := `J. Doe, A. Smith and B. Jones, "An Example Study", Journal of Examples, vol. 12, no. 3, pp. 45-67, 2017.`
	checkField(t, "Reference", want, FormatIEEEReference(data))
}

func TestFormatIEEEReferenceSparse(t *testing.T) {
	data := &ReferenceData{
		DOI:   "10.1000/example",
		Title: "An Example Study",
		Year:  "2017",
	}
	want := `"An Example Study", 2017.`
	checkField(t, "Reference", want, FormatIEEEReference(data))
}

func TestFormatIEEEReferenceFallsBackToDOI(t *testing.T) {
	data := &ReferenceData{DOI: "10.1000/example"}
	checkField(t, "Reference", "10.1000/example", FormatIEEEReference(data))
}

func TestAbbreviateGivenName(t *testing.T) {
	cases := []struct {
		given, surname, want string
	}{
		{"Jane", "Doe", "J. Doe"},
		{"Jane Q.", "Doe", "J. Q. Doe"},
		{"", "Doe", "Doe"},
		{"Jane", "", "J."},
	}
	for _, c := range cases {
		if got := abbreviateGivenName(c.given, c.surname); got != c.want {
			t.Errorf("abbreviateGivenName(%q, %q): got %q, want %q", c.given, c.surname, got, c.want)
		}
	}
}

func TestCrossRefDataDOI(t *testing.T) {
	if os.Getenv("CROSSREF_LIVE_TESTS") == "" {
		t.Skip("live CrossRef lookups disabled, set CROSSREF_LIVE_TESTS to run")
	}

	doi := "10.1016/j.chemosphere.2017.04.029"
	response, err := CrossRefDataDOI(doi)
	if err != nil {
		t.Fatal(err)
	}

	checkField(t, "Title", "Tebuconazole alters morphological, behavioral and neurochemical parameters in larvae and adult zebrafish (Danio rerio)", response.Title)
	checkField(t, "Year", "2017", response.Year)
	checkField(t, "DOI", doi, response.DOI)
}
