package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/shandysiswandi/ayola/internal/account/entity"
	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
)

// SaveCredential writes name, email and password one key at a time. A failed
// write leaves the keys written before it in place.
func (s *KV) SaveCredential(ctx context.Context, c entity.Credential) (err error) {
	ctx, span := s.startSpan(ctx, "SaveCredential")
	defer func() { s.endSpan(span, err) }()

	for _, kv := range [...][2]string{
		{entity.KeyUserName, c.Name},
		{entity.KeyUserEmail, c.Email},
		{entity.KeyUserPassword, c.Password},
	} {
		if err := s.store.Set(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("set %s: %w", kv[0], err)
		}
	}

	return nil
}

// GetCredential reads the stored account. It returns goerror.ErrNotFound when
// the email or password key is absent; a missing name reads as empty.
func (s *KV) GetCredential(ctx context.Context) (_ *entity.Credential, err error) {
	ctx, span := s.startSpan(ctx, "GetCredential")
	defer func() { s.endSpan(span, err) }()

	email, err := s.store.Get(ctx, entity.KeyUserEmail)
	if err != nil {
		return nil, err
	}

	password, err := s.store.Get(ctx, entity.KeyUserPassword)
	if err != nil {
		return nil, err
	}

	name, err := s.store.Get(ctx, entity.KeyUserName)
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		return nil, err
	}

	return &entity.Credential{Name: name, Email: email, Password: password}, nil
}

// ClearCredential removes every account key.
func (s *KV) ClearCredential(ctx context.Context) (err error) {
	ctx, span := s.startSpan(ctx, "ClearCredential")
	defer func() { s.endSpan(span, err) }()

	for _, key := range []string{entity.KeyUserName, entity.KeyUserEmail, entity.KeyUserPassword} {
		if err := s.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}

	return nil
}
