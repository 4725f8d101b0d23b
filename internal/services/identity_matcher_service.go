package services

import (
	"regexp"
	"strings"

	"github.com/alimgiray/devscope/internal/models"
)

// Hosted-VCS no-reply emails look like 12345678+username@users.noreply.github.com;
// the numeric prefix is a stable account ID.
var noReplyPattern = regexp.MustCompile(`^(\d+)\+([^@]+)@users\.noreply\.([^@]+)$`)

var honorificPrefixes = []string{"mr.", "ms.", "dr.", "prof."}
var honorificSuffixes = []string{"jr.", "sr.", "ii", "iii", "iv"}

// IdentityMatcherService decides whether two identities plausibly belong to
// the same person. Matching is a pure function of the two identities; any
// malformed input degrades to "no match".
type IdentityMatcherService struct {
	similarity        SimilarityFunc
	usernameThreshold float64
	nameThreshold     float64
}

func NewIdentityMatcherService(similarity SimilarityFunc, usernameThreshold, nameThreshold float64) *IdentityMatcherService {
	return &IdentityMatcherService{
		similarity:        similarity,
		usernameThreshold: usernameThreshold,
		nameThreshold:     nameThreshold,
	}
}

// Matches reports whether any of the independent predicates considers the
// two identities to be the same person.
func (s *IdentityMatcherService) Matches(a, b *models.Identity) bool {
	return s.sameEmailDifferentName(a, b) ||
		s.sameDomainSimilarUsername(a, b) ||
		s.similarName(a, b) ||
		s.sameNoReplyID(a, b)
}

// sameEmailDifferentName: the exact email is the strongest identity signal,
// so equal emails under different display names always match.
func (s *IdentityMatcherService) sameEmailDifferentName(a, b *models.Identity) bool {
	return strings.EqualFold(a.Email, b.Email) && !strings.EqualFold(a.Name, b.Name)
}

// sameDomainSimilarUsername: same email domain and a username similarity at
// or above the threshold.
func (s *IdentityMatcherService) sameDomainSimilarUsername(a, b *models.Identity) bool {
	userA, domainA, okA := splitEmail(a.Email)
	userB, domainB, okB := splitEmail(b.Email)
	if !okA || !okB {
		return false
	}
	if !strings.EqualFold(domainA, domainB) {
		return false
	}
	return s.similarity(userA, userB) >= s.usernameThreshold
}

// similarName: case-insensitive equality always matches; otherwise honorifics
// are stripped and the cleaned names must be similar enough or contain each
// other.
func (s *IdentityMatcherService) similarName(a, b *models.Identity) bool {
	if strings.EqualFold(a.Name, b.Name) {
		return true
	}

	cleanA := cleanName(a.Name)
	cleanB := cleanName(b.Name)
	if cleanA == "" || cleanB == "" {
		return false
	}

	if s.similarity(cleanA, cleanB) >= s.nameThreshold {
		return true
	}

	return strings.Contains(cleanA, cleanB) || strings.Contains(cleanB, cleanA)
}

// sameNoReplyID: two no-reply emails with the same numeric account ID belong
// to the same hosted-VCS account no matter what name or username they carry.
func (s *IdentityMatcherService) sameNoReplyID(a, b *models.Identity) bool {
	idA, okA := noReplyID(a.Email)
	idB, okB := noReplyID(b.Email)
	return okA && okB && idA == idB
}

func splitEmail(email string) (user, domain string, ok bool) {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func noReplyID(email string) (string, bool) {
	match := noReplyPattern.FindStringSubmatch(strings.ToLower(email))
	if match == nil {
		return "", false
	}
	return match[1], true
}

// cleanName lowercases a display name and strips common honorific prefixes
// and suffixes. Honorifics are only removed as whole tokens so names like
// "Raviv" keep their trailing "iv".
func cleanName(name string) string {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	if len(tokens) == 0 {
		return ""
	}

	if containsToken(honorificPrefixes, tokens[0]) {
		tokens = tokens[1:]
	}
	if len(tokens) > 0 && containsToken(honorificSuffixes, tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}

	return strings.Join(tokens, " ")
}

func containsToken(honorifics []string, token string) bool {
	for _, honorific := range honorifics {
		if token == honorific {
			return true
		}
	}
	return false
}
