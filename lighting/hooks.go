package lighting

import (
	"errors"
	"fmt"
)

// BlockLayer is one pass of the host's block renderer.
type BlockLayer int

const (
	LayerSolid BlockLayer = iota
	LayerCutoutMipped
	LayerCutout
	LayerTranslucent
)

func (l BlockLayer) String() string {
	switch l {
	case LayerSolid:
		return "solid"
	case LayerCutoutMipped:
		return "cutout_mipped"
	case LayerCutout:
		return "cutout"
	case LayerTranslucent:
		return "translucent"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

// BindableProgram is a Program the hooks switch on around a draw.
type BindableProgram interface {
	Program
	Bind()
	Unbind()
}

// LayerHooks are the two call sites the host places around each block-layer
// draw: Enter before the draw binds the light shader and uploads the frame,
// Exit after it unbinds. Each layer is bracketed at most once per frame.
type LayerHooks struct {
	frame    *Frame
	uploader *Uploader
	program  BindableProgram
	log      Logger

	active  BlockLayer
	entered bool
	drawn   map[BlockLayer]bool
	last    UploadStats
}

func NewLayerHooks(frame *Frame, uploader *Uploader, program BindableProgram, log Logger) *LayerHooks {
	if log == nil {
		log = nopLogger{}
	}
	return &LayerHooks{
		frame:    frame,
		uploader: uploader,
		program:  program,
		log:      log,
		drawn:    make(map[BlockLayer]bool),
	}
}

// Enter binds the program and uploads the frame's lights. The program stays
// bound even if the upload fails so the matching Exit still balances.
func (h *LayerHooks) Enter(layer BlockLayer) error {
	if h.entered {
		h.log.Warnf("lighting: enter %s while %s is still open", layer, h.active)
		return fmt.Errorf("enter %s inside %s: %w", layer, h.active, ErrHookImbalance)
	}
	if h.drawn[layer] {
		return fmt.Errorf("enter %s: %w", layer, ErrLayerRepeated)
	}
	h.entered = true
	h.active = layer
	h.drawn[layer] = true

	h.program.Bind()
	stats, err := h.uploader.Upload(h.frame, h.program)
	if err != nil {
		return fmt.Errorf("enter %s: %w", layer, err)
	}
	h.last = stats
	return nil
}

func (h *LayerHooks) Exit(layer BlockLayer) error {
	if !h.entered || h.active != layer {
		h.log.Warnf("lighting: exit %s without matching enter", layer)
		return fmt.Errorf("exit %s: %w", layer, ErrHookImbalance)
	}
	h.program.Unbind()
	h.entered = false
	return nil
}

// Draw brackets draw with Enter and Exit. The draw runs even when there was
// nothing to upload, and Exit runs even if draw panics.
func (h *LayerHooks) Draw(layer BlockLayer, draw func()) (err error) {
	if err = h.Enter(layer); err != nil && !errors.Is(err, ErrNotScanned) {
		return err
	}
	defer func() {
		if exitErr := h.Exit(layer); err == nil {
			err = exitErr
		}
	}()
	draw()
	return err
}

// LastUpload is the result of the most recent successful upload.
func (h *LayerHooks) LastUpload() UploadStats {
	return h.last
}

// EndFrame clears the frame and forgets which layers were drawn.
func (h *LayerHooks) EndFrame() error {
	var err error
	if h.entered {
		h.log.Warnf("lighting: frame ended with %s still open", h.active)
		h.program.Unbind()
		h.entered = false
		err = fmt.Errorf("end frame inside %s: %w", h.active, ErrHookImbalance)
	}
	clear(h.drawn)
	h.frame.Clear()
	return err
}
