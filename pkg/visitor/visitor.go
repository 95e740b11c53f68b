// Package visitor carries the anonymous session and role of the current request.
package visitor

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Role string

const (
	Student Role = "student"
	Admin   Role = "admin"
)

type Visitor struct {
	SessionId string
	Role      Role
}

func (v Visitor) IsAdmin() bool {
	return v.Role == Admin
}

type contextKey string

const VisitorKey contextKey = "visitor"

var ErrNoVisitor = errors.New("visitor not found")

// ParseRole maps a header value to a role; anything but "admin" is a student.
func ParseRole(value string) Role {
	if strings.EqualFold(strings.TrimSpace(value), string(Admin)) {
		return Admin
	}
	return Student
}

// Current retrieves the visitor from the context. Returns ErrNoVisitor if not present.
func Current(ctx context.Context) (Visitor, error) {
	v, ok := ctx.Value(VisitorKey).(Visitor)
	if !ok {
		log.Trace("visitor not found in context")
		return Visitor{}, ErrNoVisitor
	}
	return v, nil
}

func WithVisitor(ctx context.Context, v Visitor) context.Context {
	return context.WithValue(ctx, VisitorKey, v)
}
