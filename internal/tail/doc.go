// Package tail implements incremental tailing of a single growing file.
//
// A Tailer records the byte offset of the last observed end of file and, on
// each poll, re-reads the file and emits exactly the newly appended bytes as
// one batch. Change detection compares file content, not modification time,
// so rewrites that leave the bytes identical never fire. A file that shrinks
// below the stored offset is treated as rotated: the offset resets to zero
// and the whole current content is emitted as the next batch.
package tail
