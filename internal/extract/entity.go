package extract

import (
	"regexp"
	"strings"

	"email-meeting-triage/internal/model"
)

// nameStoplist rejects greeting/sign-off fragments mistaken for names.
// A candidate is dropped when ANY of its words appears here.
var nameStoplist = map[string]bool{
	"best": true, "regards": true, "thanks": true, "sincerely": true,
	"hello": true, "hi": true, "dear": true, "meeting": true,
	"details": true, "looking": true, "please": true, "hope": true,
}

// companyExclusions are phrases that pattern-match like company names but
// never are.
var companyExclusions = map[string]bool{
	"the team": true, "the office": true, "the company": true,
	"the meeting": true, "your convenience": true, "your team": true,
	"our team": true, "next week": true, "this week": true,
}

// knownCompanies is a small lookup of organizations that appear without any
// structural cue.
var knownCompanies = []string{
	"Google", "Microsoft", "Amazon", "Apple", "Salesforce", "HubSpot",
	"Oracle", "IBM", "Meta", "Netflix",
}

const (
	companyMinLen   = 3
	companyMaxLen   = 50
	companyMaxWords = 4
)

var (
	// Case-insensitivity is scoped to the keyword groups; name candidates
	// themselves must be capitalized.
	introNameRe     = regexp.MustCompile(`\b(?i:this is|i'm|i am|my name is)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`)
	closingNameRe   = regexp.MustCompile(`(?i:best regards|kind regards|warm regards|regards|sincerely|thank you|thanks|cheers|best)\s*[,:]?\s*([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`)
	signatureNameRe = regexp.MustCompile(`([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)\s*\n.{0,60}\b(?:Inc|LLC|Corp|Corporation|Company|Ltd|Limited|Co)\b`)

	legalSuffixRe = regexp.MustCompile(`([A-Z][A-Za-z&.-]*(?:\s+[A-Z][A-Za-z&.-]*){0,3}\s+(?:Inc\.?|LLC|Corp\.?|Corporation|Company|Ltd\.?|Limited|Co\.))`)
	roleAtRe      = regexp.MustCompile(`\b(?i:ceo|cto|cfo|coo|vp|president|director|manager|engineer|consultant|founder|lead|head|analyst)\s+at\s+([A-Z][A-Za-z&.-]*(?:\s+[A-Z][A-Za-z&.-]*){0,2})`)
	fromCompanyRe = regexp.MustCompile(`\bfrom\s+([A-Z][A-Za-z&.-]*(?:\s+[A-Z][A-Za-z&.-]*){0,2})`)
	withCompanyRe = regexp.MustCompile(`\bwith\s+([A-Z][A-Za-z&.-]*(?:\s+[A-Z][A-Za-z&.-]*){0,2})`)

	capitalizedTokenRe = regexp.MustCompile(`\b([A-Z][a-zA-Z]{2,})\b`)
	companyContextRe   = regexp.MustCompile(`(?i)\b(?:company|organization|firm|startup|agency|team at)\b`)
)

// nameStrategy is one step in the contact-name cascade.
type nameStrategy struct {
	name string
	fn   func(text string) (string, bool)
}

var nameStrategies = []nameStrategy{
	{"self-introduction", nameFromIntroduction},
	{"signature-closing", nameFromClosing},
	{"name-before-company", nameFromSignatureBlock},
	{"trailing-line", nameFromTrailingLine},
}

// ExtractContactName finds the sender's name using layered heuristics.
// Returns model.UnknownContact when every strategy fails.
func ExtractContactName(text string) string {
	for _, s := range nameStrategies {
		if name, ok := s.fn(text); ok && validName(name) {
			return name
		}
	}
	return model.UnknownContact
}

func nameFromIntroduction(text string) (string, bool) {
	m := introNameRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func nameFromClosing(text string) (string, bool) {
	m := closingNameRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func nameFromSignatureBlock(text string) (string, bool) {
	m := signatureNameRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func nameFromTrailingLine(text string) (string, bool) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return "", false
	}
	last := strings.TrimSpace(lines[len(lines)-1])
	words := strings.Fields(last)
	if len(words) == 0 || len(words) > 3 {
		return "", false
	}
	for _, w := range words {
		if w[0] < 'A' || w[0] > 'Z' {
			return "", false
		}
	}
	return last, true
}

// validName applies the shared stoplist guard to a candidate.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, w := range strings.Fields(name) {
		if nameStoplist[strings.ToLower(strings.Trim(w, ",.!"))] {
			return false
		}
	}
	return true
}

// companyStrategy is one step in the company-name cascade. Later, weaker
// heuristics are only consulted when every stronger one fails.
type companyStrategy struct {
	name string
	fn   func(text string) (string, bool)
}

var companyStrategies = []companyStrategy{
	{"legal-suffix", companyFromLegalSuffix},
	{"role-at", companyFromRoleAt},
	{"from-clause", companyFromFromClause},
	{"with-clause", companyFromWithClause},
	{"known-list", companyFromKnownList},
	{"capitalized-with-context", companyFromCapitalizedToken},
}

// ExtractCompany finds the organization name using layered heuristics.
// Returns model.UnknownCompany when every strategy fails.
func ExtractCompany(text string) string {
	for _, s := range companyStrategies {
		if company, ok := s.fn(text); ok && validCompany(company) {
			return company
		}
	}
	return model.UnknownCompany
}

func companyFromLegalSuffix(text string) (string, bool) {
	m := legalSuffixRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	candidate := strings.TrimSpace(m[1])
	if len(strings.Fields(candidate)) > companyMaxWords+1 {
		return "", false
	}
	return candidate, true
}

func companyFromRoleAt(text string) (string, bool) {
	m := roleAtRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func companyFromFromClause(text string) (string, bool) {
	m := fromCompanyRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func companyFromWithClause(text string) (string, bool) {
	m := withCompanyRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func companyFromKnownList(text string) (string, bool) {
	for _, known := range knownCompanies {
		if containsWord(text, known) {
			return known, true
		}
	}
	return "", false
}

// The weakest heuristic: a bare capitalized token only counts when a
// company-indicating word appears somewhere nearby in the text.
func companyFromCapitalizedToken(text string) (string, bool) {
	if !companyContextRe.MatchString(text) {
		return "", false
	}
	for _, m := range capitalizedTokenRe.FindAllStringSubmatch(text, -1) {
		candidate := m[1]
		if nameStoplist[strings.ToLower(candidate)] {
			continue
		}
		if validCompany(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// validCompany applies the shared guards: exclusion phrases and length bounds.
func validCompany(company string) bool {
	if len(company) < companyMinLen || len(company) > companyMaxLen {
		return false
	}
	if companyExclusions[strings.ToLower(company)] {
		return false
	}
	for _, w := range strings.Fields(company) {
		if nameStoplist[strings.ToLower(w)] {
			return false
		}
	}
	return true
}

func containsWord(text, word string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	return re.MatchString(text)
}
