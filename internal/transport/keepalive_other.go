// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !linux

package transport

import "net"

func applyKeepAlive(d *net.Dialer, ka KeepAlive) {
	d.KeepAlive = ka.Idle
	d.KeepAliveConfig = net.KeepAliveConfig{
		Enable:   true,
		Idle:     ka.Idle,
		Interval: ka.Interval,
		Count:    ka.Count,
	}
}
