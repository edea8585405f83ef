// Package hh turns search settings into HH.ru vacancy-search API calls
// and normalizes the heterogeneous response items into listing records.
//
// The adapter is deliberately failure-tolerant: a transport or parse
// failure on any page aborts pagination for that sub-query only, and the
// overall search returns whatever was accumulated together with a report
// describing the partial failure. It never propagates a transport error
// to the caller.
package hh

// apiResponse mirrors the top-level vacancy search JSON response.
type apiResponse struct {
	Items []apiItem `json:"items"`
	Pages int       `json:"pages"`
	Page  int       `json:"page"`
	Found int       `json:"found"`
}

// apiItem mirrors a single vacancy in the search response.
type apiItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	AlternateURL string      `json:"alternate_url"`
	PublishedAt  string      `json:"published_at"`
	Employer     apiEmployer `json:"employer"`
	Area         apiArea     `json:"area"`
	Salary       *apiSalary  `json:"salary"`
	Schedule     apiSchedule `json:"schedule"`
	Snippet      apiSnippet  `json:"snippet"`
}

type apiEmployer struct {
	Name string `json:"name"`
}

type apiArea struct {
	Name string `json:"name"`
}

type apiSalary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
}

type apiSchedule struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type apiSnippet struct {
	Requirement    string `json:"requirement"`
	Responsibility string `json:"responsibility"`
}
