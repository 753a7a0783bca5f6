// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// TokenSource yields the primary bearer token. Connect asks for it on every
// (re)connect so a rotated token file is picked up.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// OAuthToken is the parsed form of the token string produced by the OAuth
// flow, e.g.
//
//	oauth_token=S=s1:U=2a:E=...&oauth_token_secret=&edam_shard=s1&edam_userId=42&edam_expires=1700000000000
//
// A bare token without any key=value pair is accepted as Token.
type OAuthToken struct {
	Token           string
	Secret          string
	Shard           string
	UserID          int32
	Expires         int64
	NoteStoreURL    string
	WebAPIURLPrefix string
}

// ParseOAuthToken parses raw, see [OAuthToken].
func ParseOAuthToken(raw string) (OAuthToken, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return OAuthToken{}, ErrNoToken
	}
	if !strings.Contains(raw, "oauth_token=") {
		return OAuthToken{Token: raw}, nil
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return OAuthToken{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	tok := OAuthToken{
		Token:           values.Get("oauth_token"),
		Secret:          values.Get("oauth_token_secret"),
		Shard:           values.Get("edam_shard"),
		NoteStoreURL:    values.Get("edam_noteStoreUrl"),
		WebAPIURLPrefix: values.Get("edam_webApiUrlPrefix"),
	}
	if tok.Token == "" {
		return OAuthToken{}, fmt.Errorf("%w: empty oauth_token", ErrInvalidToken)
	}
	if v := values.Get("edam_userId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return OAuthToken{}, fmt.Errorf("%w: edam_userId: %w", ErrInvalidToken, err)
		}
		tok.UserID = int32(id)
	}
	if v := values.Get("edam_expires"); v != "" {
		exp, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return OAuthToken{}, fmt.Errorf("%w: edam_expires: %w", ErrInvalidToken, err)
		}
		tok.Expires = exp
	}

	return tok, nil
}

type staticTokenSource struct {
	raw string
}

// NewStaticTokenSource returns a TokenSource for a fixed token string.
func NewStaticTokenSource(raw string) TokenSource {
	return &staticTokenSource{raw: raw}
}

func (s *staticTokenSource) Token(_ context.Context) (string, error) {
	tok, err := ParseOAuthToken(s.raw)
	if err != nil {
		return "", err
	}
	return tok.Token, nil
}

type fileTokenSource struct {
	path string
}

// NewFileTokenSource returns a TokenSource that re-reads path on every call.
func NewFileTokenSource(path string) TokenSource {
	return &fileTokenSource{path: path}
}

func (f *fileTokenSource) Token(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	tok, err := ParseOAuthToken(string(data))
	if err != nil {
		return "", err
	}
	return tok.Token, nil
}
