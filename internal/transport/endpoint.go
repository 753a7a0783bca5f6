// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"net"
	"net/url"
	"strconv"
)

// Endpoint is the address of one logical store.
type Endpoint struct {
	Host string
	Port int
	// Path is the store path, e.g. "/edam/user" or "/edam/note/s1".
	Path string
	// TLS selects an encrypted channel.
	TLS bool
}

// Address returns "host:port".
func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// URL returns the full request URL of the store.
func (e Endpoint) URL() string {
	scheme := "http"
	if e.TLS {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: e.Address(), Path: e.Path}
	return u.String()
}

func (e Endpoint) String() string {
	return e.URL()
}
