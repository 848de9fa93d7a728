package alloc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/format"
)

func requireViolation(t *testing.T, err error, kind Kind) *IntegrityError {
	t.Helper()
	require.ErrorIs(t, err, ErrIntegrity)
	var ie *IntegrityError
	require.True(t, errors.As(err, &ie), "want *IntegrityError, got %T", err)
	assert.Equal(t, kind, ie.Kind, "got %v", ie)
	return ie
}

func TestFree_NullPointer(t *testing.T) {
	a := newFreshAllocator(t, 4096)
	before := snapshot(a.Heap())

	ie := requireViolation(t, a.Free(Null), KindNullPointer)
	assert.Equal(t, "free", ie.Op)
	assert.Equal(t, before, a.Heap().Bytes())
	assert.Equal(t, 1, a.Stats().Violations)
}

func TestFree_DoubleFree(t *testing.T) {
	a := newFreshAllocator(t, 4096)
	p, _, err := a.Alloc(100)
	require.NoError(t, err)
	require.NoError(t, a.Free(p))
	before := snapshot(a.Heap())

	ie := requireViolation(t, a.Free(p), KindDoubleFree)
	assert.Equal(t, p, ie.Ptr)
	assert.Equal(t, 0, ie.Offset)
	assert.Equal(t, before, a.Heap().Bytes())
}

func TestFree_DoubleFreeOfUnmergedChunk(t *testing.T) {
	h, offs := newTestHeapWithLayout(t, 4096, []span{
		{64, false}, {64, true}, {64, false},
	})
	a := newTestAllocator(t, h)

	requireViolation(t, a.Free(Ptr(offs[1]+format.HeaderSize)), KindDoubleFree)
}

func TestFree_ForeignPointers(t *testing.T) {
	a := newFreshAllocator(t, 4096)
	p, _, err := a.Alloc(100)
	require.NoError(t, err)
	before := snapshot(a.Heap())

	for _, bad := range []Ptr{
		p + 4,      // inside the payload
		p - 4,      // inside the header
		4,          // inside the first header
		Ptr(4096),  // one past the arena
		Ptr(99999), // far outside
	} {
		ie := requireViolation(t, a.Free(bad), KindForeignPointer)
		assert.Equal(t, bad, ie.Ptr)
	}
	assert.Equal(t, before, a.Heap().Bytes())
}

func TestFree_CorruptHeader(t *testing.T) {
	a := newFreshAllocator(t, 4096)
	p1, _, err := a.Alloc(100)
	require.NoError(t, err)
	p2, _, err := a.Alloc(100)
	require.NoError(t, err)

	// Smash the second chunk's size field.
	a.Heap().Bytes()[112+format.SizeOffset] = 0x7F

	ie := requireViolation(t, a.Free(p2), KindCorrupt)
	assert.Equal(t, 112, ie.Offset)
	assert.ErrorIs(t, ie, heap.ErrCorrupt)
	assert.ErrorIs(t, ie, format.ErrChecksum)

	// Freeing p1 needs its next neighbor's header, which is the broken one.
	requireViolation(t, a.Free(p1), KindCorrupt)
}

func TestAlloc_CorruptHeader(t *testing.T) {
	a := newFreshAllocator(t, 4096)
	_, _, err := a.Alloc(100)
	require.NoError(t, err)
	a.Heap().Bytes()[112+format.StatusOffset] ^= 0x80

	p, payload, err := a.Alloc(16)
	requireViolation(t, err, KindCorrupt)
	assert.Equal(t, Null, p)
	assert.Nil(t, payload)
}

func TestIntegrityError_Messages(t *testing.T) {
	cases := []struct {
		err  *IntegrityError
		want string
	}{
		{&IntegrityError{Kind: KindNullPointer, Op: "free", Offset: -1},
			"alloc: free: attempt to free a NULL pointer"},
		{&IntegrityError{Kind: KindForeignPointer, Op: "free", Ptr: 7, Offset: -1},
			"alloc: free: pointer 7 does not belong to the heap"},
		{&IntegrityError{Kind: KindDoubleFree, Op: "free", Ptr: 12, Offset: 0},
			"alloc: free: double free detected (pointer 12, chunk 0)"},
		{&IntegrityError{Kind: KindCorrupt, Op: "alloc", Offset: 112, Err: errors.New("boom")},
			"alloc: alloc: corrupt heap at offset 112: boom"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.Error())
	}
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

// errExited stands in for process exit inside FatalPolicy tests.
type errExited struct{ code int }

func hookExit(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	prevExit, prevStderr := exit, stderr
	exit = func(code int) { panic(errExited{code}) }
	stderr = &out
	t.Cleanup(func() { exit, stderr = prevExit, prevStderr })
	return &out
}

func TestFatalPolicy_ExitsWithStatusOne(t *testing.T) {
	out := hookExit(t)
	h, err := heap.New(4096)
	require.NoError(t, err)
	a, err := New(h, nil)
	require.NoError(t, err)

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "FatalPolicy must not return")
			assert.Equal(t, errExited{1}, r)
		}()
		_ = a.Free(Null)
	}()
	assert.Equal(t, "Error: alloc: free: attempt to free a NULL pointer\n", out.String())
}

// TestFatalPolicy_TerminatesProcess runs each violation in a child process
// with the default policy and checks that the child really exits with 1.
func TestFatalPolicy_TerminatesProcess(t *testing.T) {
	if scenario := os.Getenv("HEAPKIT_FATAL_SCENARIO"); scenario != "" {
		runFatalScenario(scenario)
		// Reaching here means the violation was ignored.
		fmt.Fprintln(os.Stderr, "survived", scenario)
		return
	}

	cases := map[string]string{
		"null":    "attempt to free a NULL pointer",
		"foreign": "does not belong to the heap",
		"double":  "double free detected",
	}
	for scenario, msg := range cases {
		t.Run(scenario, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestFatalPolicy_TerminatesProcess$")
			cmd.Env = append(os.Environ(), "HEAPKIT_FATAL_SCENARIO="+scenario)
			var errOut bytes.Buffer
			cmd.Stderr = &errOut

			err := cmd.Run()
			var ee *exec.ExitError
			require.True(t, errors.As(err, &ee), "child should exit non-zero, got %v (stderr: %s)", err, errOut.String())
			assert.Equal(t, 1, ee.ExitCode())
			assert.Contains(t, errOut.String(), msg)
			assert.NotContains(t, errOut.String(), "survived")
		})
	}
}

func runFatalScenario(scenario string) {
	h, err := heap.New(4096)
	if err != nil {
		return
	}
	a, err := New(h, nil)
	if err != nil {
		return
	}
	p, _, _ := a.Alloc(100)

	switch scenario {
	case "null":
		_ = a.Free(Null)
	case "foreign":
		_ = a.Free(p + 4)
	case "double":
		_ = a.Free(p)
		_ = a.Free(p)
	}
}
