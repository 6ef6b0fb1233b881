package usecase

import (
	"context"

	"github.com/shandysiswandi/ayola/internal/session/entity"
)

type NavigateInput struct {
	ID     string
	Screen entity.Screen
}

// Navigate follows a link the user tapped. Transitions that need a timer, a
// credential match, a registration or an accepted code are not reachable here.
func (s *Usecase) Navigate(ctx context.Context, in NavigateInput) (*entity.Snapshot, error) {
	ctx, span := s.startSpan(ctx, "Navigate")
	defer span.End()

	return s.withSession(ctx, in.ID, func(sess *session) error {
		return s.goTo(ctx, sess, in.Screen, entity.TriggerUser)
	})
}

// Logout returns from HomeScreen to LoginScreen. The stored account is kept.
func (s *Usecase) Logout(ctx context.Context, id string) (*entity.Snapshot, error) {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	return s.withSession(ctx, id, func(sess *session) error {
		if err := requireScreen(ctx, sess, entity.HomeScreen); err != nil {
			return err
		}
		return s.goTo(ctx, sess, entity.LoginScreen, entity.TriggerUser)
	})
}
