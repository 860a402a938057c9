// Package users provides the repository for permanent accounts.
package users

import (
	"context"
	"fmt"

	"github.com/henkenclub/account/internal/server/models"
)

// SelectorKind discriminates the unique column a lookup targets.
type SelectorKind int

const (
	SelectByID SelectorKind = iota
	SelectByAlias
	SelectByEmail
)

// Selector is a tagged lookup key: exactly one unique column and the value
// to match. Constructing one through ByID/ByAlias/ByEmail keeps call sites
// honest about which index they hit.
type Selector struct {
	Kind  SelectorKind
	Value string
}

func ByID(id string) Selector       { return Selector{Kind: SelectByID, Value: id} }
func ByAlias(alias string) Selector { return Selector{Kind: SelectByAlias, Value: alias} }
func ByEmail(email string) Selector { return Selector{Kind: SelectByEmail, Value: email} }

// String prints the selector for logs and error messages.
func (s Selector) String() string {
	switch s.Kind {
	case SelectByID:
		return fmt.Sprintf("id=%s", s.Value)
	case SelectByAlias:
		return fmt.Sprintf("alias=%s", s.Value)
	case SelectByEmail:
		return fmt.Sprintf("email=%s", s.Value)
	default:
		return fmt.Sprintf("unknown(%d)=%s", s.Kind, s.Value)
	}
}

// Repository is the persistent store for permanent users.
//
// Find returns common.ErrorNotFound when no row matches. Upsert is keyed by
// id: inserting an existing id is a no-op that returns the stored row
// untouched, which is what makes promotion idempotent. Both writes translate
// unique-constraint violations on email/alias into common.ErrorDuplicate.
type Repository interface {
	Find(ctx context.Context, sel Selector) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
}
