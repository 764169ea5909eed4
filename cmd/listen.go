package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/siahbug/harmonica/classify"
	"github.com/siahbug/harmonica/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Classifies held notes from a MIDI input",
	Long: `Listens to the first MIDI input port and, whenever the held notes settle,
prints the necklace class of the sounding pitch class set.`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

// heldNotes tracks the currently sounding keys. The MIDI driver delivers
// messages on its own goroutine while the debounced report fires on a timer
// goroutine, so every access goes through the mutex.
type heldNotes struct {
	mu   sync.Mutex
	keys map[uint8]bool
}

func newHeldNotes() *heldNotes {
	return &heldNotes{keys: make(map[uint8]bool)}
}

func (h *heldNotes) On(key uint8) {
	h.mu.Lock()
	h.keys[key] = true
	h.mu.Unlock()
}

func (h *heldNotes) Off(key uint8) {
	h.mu.Lock()
	delete(h.keys, key)
	h.mu.Unlock()
}

// Snapshot returns a copy of the held keys, safe to use without the lock.
func (h *heldNotes) Snapshot() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return util.GetKeys(h.keys)
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("Can't find a MIDI input port")
		return
	}

	classifier, err := classify.New(modulus)
	if err != nil {
		panic(err.Error())
	}

	held := newHeldNotes()
	settled := debounce.New(50 * time.Millisecond)

	report := func() {
		keys := held.Snapshot()
		if len(keys) == 0 {
			return
		}
		seq := make([]int, len(keys))
		for i, k := range keys {
			seq[i] = int(k) % modulus
		}
		info, err := classifier.Classify(seq)
		if err != nil {
			fmt.Printf("Could not classify %v: %v\n", seq, err)
			return
		}
		label := info.Label
		if label == "" {
			label = classify.Key(info.CanonicalForm)
		}
		fmt.Printf("%v  vector=%v  %v\n", info.CanonicalForm, info.IntervalVector, label)
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held.On(key)
			settled(report)
		case msg.GetNoteEnd(&ch, &key):
			held.Off(key)
			settled(report)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	select {}
}
