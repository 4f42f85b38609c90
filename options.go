// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ctrie

import "github.com/go-logr/logr"

type config struct {
	logger    logr.Logger
	cacheSize int
}

func defaultConfig() config {
	return config{
		logger: logr.Discard(),
	}
}

// Option configures a Trie at construction time.
type Option func(*config)

// WithLogger routes the trie's debug logging (V(1)) to logger.
func WithLogger(logger logr.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLookupCache keeps the values of the size most recently used keys in
// an LRU in front of the tree walk. A size <= 0 disables the cache.
func WithLookupCache(size int) Option {
	return func(c *config) {
		c.cacheSize = size
	}
}
