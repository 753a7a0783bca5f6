// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification tells [DB.withTx] whether a failed transaction gets
// another attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non_retryable"
}

// ErrorClassificator decides whether a failed statement is worth another
// attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
