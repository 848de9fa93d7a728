// Package heap provides the fixed-size arena a heap allocator carves into chunks.
//
// # Overview
//
// A Heap owns one zero-initialized byte buffer and nothing else. Every byte of
// the buffer belongs to exactly one chunk; chunks are laid out back to back
// starting at offset 0, and each begins with a format.HeaderSize header
// recording its status and total size:
//
//	[hdr|data......][hdr|data..][hdr|data.............]
//	0               c1.Size     c1.Size+c2.Size        Size()
//
// A freshly created heap holds a single free chunk spanning the whole buffer.
//
// # Chunk Access
//
// Chunk metadata is never reached through pointer casts. ChunkAt and SetChunk
// read and write headers at an explicit byte offset and validate every access:
// the header must be inside the buffer, its check word must match, its status
// tag must be known, and the chunk it describes must end inside the buffer.
//
//	c, err := h.ChunkAt(0)
//	if err != nil {
//	    return err // corrupt or out-of-range
//	}
//	fmt.Println(c.Status, c.Size)
//
// Chunks walks the layout in address order:
//
//	it := h.Chunks()
//	for {
//	    c, err := it.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// # Thread Safety
//
// Heap instances are not thread-safe. Allocation policy lives in the alloc
// subpackage; this package only knows how the arena is laid out.
package heap
