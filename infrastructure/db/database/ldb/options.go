package ldb

import "github.com/syndtr/goleveldb/leveldb/opt"

// Options returns the leveldb options used to open an archive holding
// cacheSizeMiB megabytes of block cache. Blocks are written once and read
// sequentially on replay, so seek compaction is disabled.
func Options(cacheSizeMiB int) *opt.Options {
	return &opt.Options{
		Compression:            opt.NoCompression,
		BlockCacheCapacity:     cacheSizeMiB * opt.MiB,
		WriteBuffer:            (cacheSizeMiB / 2) * opt.MiB,
		DisableSeeksCompaction: true,
	}
}
