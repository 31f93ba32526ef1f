package auth

import (
	"strings"

	"github.com/polidog/web/internal/domain"
)

// AllowList restricts which email addresses may create an account. An
// empty list allows everyone.
type AllowList struct {
	emails map[string]struct{}
}

// NewAllowList builds an allow-list from trimmed, case-insensitive
// addresses. Blank entries are ignored.
func NewAllowList(emails []string) *AllowList {
	a := &AllowList{emails: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			a.emails[e] = struct{}{}
		}
	}
	return a
}

// BeforeUserCreate runs before any user row is inserted and returns
// domain.ErrEmailNotAllowed when the address is not listed.
func (a *AllowList) BeforeUserCreate(email string) error {
	if a == nil || len(a.emails) == 0 {
		return nil
	}
	if _, ok := a.emails[strings.ToLower(strings.TrimSpace(email))]; !ok {
		return domain.ErrEmailNotAllowed
	}
	return nil
}
