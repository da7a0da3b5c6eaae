// Package parsing looks up reference metadata on CrossRef and formats it as
// IEEE reference lines for the paper's reference list.
package parsing

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

// crossRefEnvelope picks the fields we need out of the unixsd XML payload.
type crossRefEnvelope struct {
	Title     string           `xml:"query_result>body>query>doi_record>crossref>journal>journal_article>titles>title"`
	Year      string           `xml:"query_result>body>query>doi_record>crossref>journal>journal_issue>publication_date>year"`
	Volume    string           `xml:"query_result>body>query>doi_record>crossref>journal>journal_issue>journal_volume>volume"`
	Issue     string           `xml:"query_result>body>query>doi_record>crossref>journal>journal_issue>issue"`
	Journal   string           `xml:"query_result>body>query>doi_record>crossref>journal>journal_metadata>full_title"`
	FirstPage string           `xml:"query_result>body>query>doi_record>crossref>journal>journal_article>pages>first_page"`
	LastPage  string           `xml:"query_result>body>query>doi_record>crossref>journal>journal_article>pages>last_page"`
	Authors   []crossRefPerson `xml:"query_result>body>query>doi_record>crossref>journal>journal_article>contributors>person_name"`
}

type crossRefPerson struct {
	GivenName string `xml:"given_name"`
	Surname   string `xml:"surname"`
}

// ReferenceData is the tidied metadata for one looked-up work.
type ReferenceData struct {
	DOI     string   `json:"doi"`
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Journal string   `json:"journal"`
	Volume  string   `json:"volume"`
	Issue   string   `json:"issue"`
	Pages   string   `json:"pages"`
	Year    string   `json:"year"`
}

// CrossRefDataDOI fetches the unixsd record for a DOI and tidies it.
func CrossRefDataDOI(doi string) (*ReferenceData, error) {
	log.Printf("Cross referencing data for DOI: %s\n", doi)

	client := &http.Client{}

	response, err := client.Get("https://api.crossref.org/works/" + doi + "/transform/application/vnd.crossref.unixsd+xml")
	if err != nil {
		return nil, err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			fmt.Println("Error closing Crossref response body:", err)
		}
	}(response.Body)

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crossref returned status %d for DOI %s", response.StatusCode, doi)
	}

	xmlBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	var envelope crossRefEnvelope
	err = xml.Unmarshal(xmlBytes, &envelope)
	if err != nil {
		return nil, err
	}

	return tidyReferenceData(doi, &envelope), nil
}

func tidyReferenceData(doi string, envelope *crossRefEnvelope) *ReferenceData {
	data := &ReferenceData{
		DOI:     doi,
		Title:   strings.TrimSpace(envelope.Title),
		Journal: strings.TrimSpace(envelope.Journal),
		Volume:  envelope.Volume,
		Issue:   envelope.Issue,
		Year:    envelope.Year,
	}
	for _, person := range envelope.Authors {
		name := abbreviateGivenName(person.GivenName, person.Surname)
		if name != "" {
			data.Authors = append(data.Authors, name)
		}
	}
	if envelope.FirstPage != "" {
		data.Pages = envelope.FirstPage
		if envelope.LastPage != "" {
			data.Pages = envelope.FirstPage + "-" + envelope.LastPage
		}
	}
	return data
}

// abbreviateGivenName turns "Jane Q." + "Doe" into "J. Q. Doe".
func abbreviateGivenName(given, surname string) string {
	surname = strings.TrimSpace(surname)
	var initials []string
	for _, part := range strings.Fields(given) {
		r := []rune(part)
		if len(r) == 0 {
			continue
		}
		initials = append(initials, string(r[0])+".")
	}
	if len(initials) == 0 {
		return surname
	}
	if surname == "" {
		return strings.Join(initials, " ")
	}
	return strings.Join(initials, " ") + " " + surname
}

// FormatIEEEReference renders the metadata as one IEEE style reference line,
// without the [n] index. The index is always derived from list position when
// the paper is rendered.
func FormatIEEEReference(data *ReferenceData) string {
	var parts []string

	if len(data.Authors) > 0 {
		parts = append(parts, joinAuthors(data.Authors))
	}
	if data.Title != "" {
		parts = append(parts, fmt.Sprintf("\"%s\"", data.Title))
	}
	if data.Journal != "" {
		parts = append(parts, data.Journal)
	}
	if data.Volume != "" {
		parts = append(parts, "vol. "+data.Volume)
	}
	if data.Issue != "" {
		parts = append(parts, "no. "+data.Issue)
	}
	if data.Pages != "" {
		parts = append(parts, "pp. "+data.Pages)
	}
	if data.Year != "" {
		parts = append(parts, data.Year)
	}

	if len(parts) == 0 {
		return data.DOI
	}
	return strings.Join(parts, ", ") + "."
}

func joinAuthors(authors []string) string {
	switch len(authors) {
	case 1:
		return authors[0]
	case 2:
		return authors[0] + " and " + authors[1]
	default:
		return strings.Join(authors[:len(authors)-1], ", ") + " and " + authors[len(authors)-1]
	}
}
