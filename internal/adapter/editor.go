package adapter

import (
	"os"

	"github.com/neovim/go-client/nvim"
)

// Editor is the "save all buffers, reload after rename" collaborator.
// Rename operations flush pending editor edits before mutating the tree
// and nudge the editor to pick up moved/rewritten files afterwards; the
// core only depends on this small surface, not on any editor specifics.
type Editor interface {
	// SaveAll persists every modified buffer.
	SaveAll() error

	// ReloadChanged re-reads buffers whose backing files changed on disk.
	ReloadChanged() error
}

// NoopEditor is used when no editor is attached.
type NoopEditor struct{}

// SaveAll is a no-op.
func (NoopEditor) SaveAll() error { return nil }

// ReloadChanged is a no-op.
func (NoopEditor) ReloadChanged() error { return nil }

// NvimEditor drives a running Neovim instance over its RPC socket.
type NvimEditor struct {
	v *nvim.Nvim
}

// DialNvim connects to the Neovim instance advertised in the environment
// ($NVIM, or the older $NVIM_LISTEN_ADDRESS). Returns nil when no
// instance is advertised.
func DialNvim() (*NvimEditor, error) {
	addr := os.Getenv("NVIM")
	if addr == "" {
		addr = os.Getenv("NVIM_LISTEN_ADDRESS")
	}

	if addr == "" {
		return nil, nil
	}

	v, err := nvim.Dial(addr)
	if err != nil {
		return nil, err
	}

	return &NvimEditor{v: v}, nil
}

// SaveAll writes every modified buffer.
func (e *NvimEditor) SaveAll() error {
	return e.v.Command("silent! wall")
}

// ReloadChanged checks all buffers against their files on disk.
func (e *NvimEditor) ReloadChanged() error {
	return e.v.Command("silent! checktime")
}

// Close drops the RPC connection.
func (e *NvimEditor) Close() error {
	return e.v.Close()
}
