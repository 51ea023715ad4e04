package report

import (
	"encoding/xml"
	"errors"
	"strings"

	"junitdiff/internal/domain"
)

// suiteXML mirrors the surefire report schema: a testsuite root element
// carrying declared counts and testcase children. Any other root element is
// rejected by the decoder.
type suiteXML struct {
	XMLName  xml.Name  `xml:"testsuite"`
	Name     string    `xml:"name,attr"`
	Tests    int       `xml:"tests,attr"`
	Failures int       `xml:"failures,attr"`
	Errors   int       `xml:"errors,attr"`
	Skipped  int       `xml:"skipped,attr"`
	Cases    []caseXML `xml:"testcase"`
}

type caseXML struct {
	Name    string     `xml:"name,attr"`
	Failure *markerXML `xml:"failure"`
	Error   *markerXML `xml:"error"`
	Skipped *markerXML `xml:"skipped"`
}

type markerXML struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

var (
	errNoSuiteName = errors.New("testsuite element has no name attribute")
	errNoCaseName  = errors.New("testcase element has no name attribute")
)

// parsedSuite is one decoded report file: the suite name, its declared
// summary and the normalized case records in document order.
type parsedSuite struct {
	Name    string
	Summary domain.SuiteSummary
	Records []domain.TestCaseRecord
}

// parseReport decodes one report file. A name attribute is required on the
// suite and on every case, so that identities can be constructed.
func parseReport(data []byte) (parsedSuite, error) {
	var suite suiteXML
	if err := xml.Unmarshal(data, &suite); err != nil {
		return parsedSuite{}, err
	}
	if suite.Name == "" {
		return parsedSuite{}, errNoSuiteName
	}

	parsed := parsedSuite{
		Name: suite.Name,
		Summary: domain.SuiteSummary{
			Tests:    suite.Tests,
			Failures: suite.Failures,
			Errors:   suite.Errors,
			Skipped:  suite.Skipped,
		},
		Records: make([]domain.TestCaseRecord, 0, len(suite.Cases)),
	}

	for _, c := range suite.Cases {
		if c.Name == "" {
			return parsedSuite{}, errNoCaseName
		}
		status, detail := caseOutcome(c)
		parsed.Records = append(parsed.Records, domain.TestCaseRecord{
			Suite:  suite.Name,
			Case:   c.Name,
			Status: status,
			Detail: detail,
		})
	}

	return parsed, nil
}

// caseOutcome derives the status of one case from its marker children. The
// priority is fixed: an error marker beats a failure marker beats a skipped
// marker; a case with no markers passed. Detail text is carried only for
// failed and errored cases.
func caseOutcome(c caseXML) (domain.Status, string) {
	switch {
	case c.Error != nil:
		return domain.StatusErrored, markerDetail(c.Error)
	case c.Failure != nil:
		return domain.StatusFailed, markerDetail(c.Failure)
	case c.Skipped != nil:
		return domain.StatusSkipped, ""
	default:
		return domain.StatusPassed, ""
	}
}

// markerDetail prefers the message attribute and falls back to the trimmed
// element body.
func markerDetail(m *markerXML) string {
	if m.Message != "" {
		return m.Message
	}
	return strings.TrimSpace(m.Body)
}
