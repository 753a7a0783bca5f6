// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/decred/dcrd/container/lru"
)

const defaultTagCacheSize = 1024

// CachedTagLookup resolves tag names through an LRU in front of a
// [TagRepository]. Only hits are cached, so a tag stored later is found on
// the next lookup.
type CachedTagLookup struct {
	tags  TagRepository
	names *lru.Map[string, string]
}

// NewCachedTagLookup returns a lookup holding at most limit names. A zero
// limit selects the default size.
func NewCachedTagLookup(tags TagRepository, limit uint32) *CachedTagLookup {
	if limit == 0 {
		limit = defaultTagCacheSize
	}
	return &CachedTagLookup{
		tags:  tags,
		names: lru.NewMap[string, string](limit),
	}
}

func (c *CachedTagLookup) TagName(ctx context.Context, guid string) (string, bool, error) {
	if name, ok := c.names.Get(guid); ok {
		return name, true, nil
	}

	tag, err := c.tags.GetTag(ctx, guid)
	if errors.Is(err, ErrTagNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	c.names.Put(guid, tag.Name)
	return tag.Name, true, nil
}

// Invalidate drops cached names for guids.
func (c *CachedTagLookup) Invalidate(guids ...string) {
	for _, guid := range guids {
		c.names.Delete(guid)
	}
}

// Len reports the number of cached names.
func (c *CachedTagLookup) Len() uint32 {
	return c.names.Len()
}
