// Package policy holds the authorization decisions as pure functions over
// plain values. The actor is always passed in explicitly; nothing here
// reads request or session state.
package policy

import "portfoliohub/internal/httpapi/models"

// Actor is the identity behind a request. The zero value is the anonymous
// visitor.
type Actor struct {
	ID       string
	Username string
	IsAdmin  bool
}

// Anonymous is the actor for unauthenticated requests.
var Anonymous = Actor{}

func (a Actor) Authenticated() bool {
	return a.ID != ""
}

// CanView reports whether the actor may see the project: published
// projects are visible to everyone, drafts only to admins.
func CanView(actor Actor, project *models.Project) bool {
	if project.IsPublished {
		return true
	}
	return actor.Authenticated() && actor.IsAdmin
}

// CanMutate gates the admin-only operations: project create/edit/delete,
// about edits and notification management.
func CanMutate(actor Actor) bool {
	return actor.Authenticated() && actor.IsAdmin
}

// CanComment requires authentication only. It deliberately does not
// consult CanView: a signed-in user holding the id of an unpublished
// project is still allowed to comment on it.
func CanComment(actor Actor) bool {
	return actor.Authenticated()
}
