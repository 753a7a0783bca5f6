// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import "encoding/json"

// request is the envelope POSTed to a store path.
type request struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

// reply carries either a result or an exception, never both.
type reply struct {
	ID        string           `json:"id"`
	Result    json.RawMessage  `json:"result,omitempty"`
	Exception *RemoteException `json:"exception,omitempty"`
}
