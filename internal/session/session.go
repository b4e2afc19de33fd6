// Package session models the client-side tracking session as an explicit
// state machine over the three views: logged out, order list, order detail.
// Nothing here is persisted; "login" only records the phone used as the
// list filter key.
package session

import "errors"

type View int

const (
	ViewLoggedOut View = iota
	ViewList
	ViewDetail
)

func (v View) String() string {
	switch v {
	case ViewLoggedOut:
		return "logged_out"
	case ViewList:
		return "list"
	case ViewDetail:
		return "detail"
	default:
		return "unknown"
	}
}

var (
	ErrPhoneRequired     = errors.New("phone number required")
	ErrInvalidTransition = errors.New("invalid view transition")
)

type Session struct {
	view          View
	phone         string
	orderID       string
	complaintForm bool
}

// New starts a session in the logged-out view.
func New() *Session {
	return &Session{view: ViewLoggedOut}
}

func (s *Session) View() View            { return s.view }
func (s *Session) Phone() string         { return s.phone }
func (s *Session) SelectedOrder() string { return s.orderID }
func (s *Session) ComplaintFormOpen() bool {
	return s.complaintForm
}

// Login accepts any non-empty phone and moves to the list view. There is no
// credential check: the phone is a filter key, not an identity.
func (s *Session) Login(phone string) error {
	if s.view != ViewLoggedOut {
		return ErrInvalidTransition
	}
	if phone == "" {
		return ErrPhoneRequired
	}
	s.phone = phone
	s.view = ViewList
	return nil
}

// Logout returns to the logged-out view from anywhere past login and clears
// all session state.
func (s *Session) Logout() error {
	if s.view == ViewLoggedOut {
		return ErrInvalidTransition
	}
	*s = Session{view: ViewLoggedOut}
	return nil
}

// SelectOrder moves from the list to the detail view for one order.
func (s *Session) SelectOrder(orderID string) error {
	if s.view != ViewList || orderID == "" {
		return ErrInvalidTransition
	}
	s.orderID = orderID
	s.view = ViewDetail
	return nil
}

// Back leaves the detail view. The complaint form toggle does not survive
// the transition.
func (s *Session) Back() error {
	if s.view != ViewDetail {
		return ErrInvalidTransition
	}
	s.orderID = ""
	s.complaintForm = false
	s.view = ViewList
	return nil
}

// ToggleComplaintForm shows or hides the complaint sub-form. It is local to
// the detail view, not a navigational state.
func (s *Session) ToggleComplaintForm() error {
	if s.view != ViewDetail {
		return ErrInvalidTransition
	}
	s.complaintForm = !s.complaintForm
	return nil
}
