package audio

import (
	"bytes"
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

//go:embed chime.wav
var chimeWav []byte

var errNotWAV = errors.New("not a RIFF/WAVE file")

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// Player manages a single chime playback with cancellation support
type Player struct {
	stopChan chan struct{}
	player   *oto.Player
	stopped  bool
	mu       sync.Mutex
}

// wavFormat holds WAV file format information
type wavFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// initAudioContext initializes the global audio context once
func initAudioContext(format *wavFormat) {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("Audio context initialized successfully")
	})
}

// PlayChime plays the bundled reminder chime once
func PlayChime() *Player {
	return PlaySound(chimeWav)
}

// Chime plays the reminder chime, cutting off one that is still sounding
type Chime struct {
	mu      sync.Mutex
	current *Player
	play    func() *Player
}

func NewChime() *Chime {
	return &Chime{play: PlayChime}
}

// Play starts the chime. The first call waits for the audio device, so
// callers holding other locks should run it in a goroutine.
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current.Stop()
	c.current = c.play()
}

// Stop silences the chime if it is playing
func (c *Chime) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current.Stop()
	c.current = nil
}

// PlaySound plays the provided 16-bit PCM WAV data once and returns a Player for control
func PlaySound(wavData []byte) *Player {
	// Parse WAV header to get audio format
	format, audioData, err := parseWAV(wavData)
	if err != nil {
		log.Printf("Failed to parse WAV file: %v", err)
		return nil
	}
	if format.BitDepth != 16 {
		log.Printf("Unsupported WAV bit depth: %d", format.BitDepth)
		return nil
	}

	// Initialize global audio context if not already done
	initAudioContext(format)

	if !audioCtxReady || globalAudioCtx == nil {
		log.Printf("Audio context not ready")
		return nil
	}

	p := &Player{
		stopChan: make(chan struct{}),
	}

	p.player = globalAudioCtx.NewPlayer(bytes.NewReader(audioData))

	// Play the sound in a goroutine so it doesn't block
	go p.playOnce()

	return p
}

func (p *Player) playOnce() {
	p.player.Play()

	// Wait for the sound to finish playing or stop signal
	for p.player.IsPlaying() {
		select {
		case <-p.stopChan:
			p.player.Pause()
			p.player.Close()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}

	// finished on its own; a later Stop has nothing to do
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()

	if err := p.player.Close(); err != nil {
		log.Printf("Failed to close audio player: %v", err)
	}
}

// Stop stops the audio playback
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stopped {
		p.stopped = true
		close(p.stopChan)

		// Also try to pause the current player if it exists
		if p.player != nil {
			p.player.Pause()
		}

		log.Println("Audio playback stopped")
	}
}

// parseWAV parses a WAV file and returns the format and audio data
func parseWAV(data []byte) (*wavFormat, []byte, error) {
	reader := bytes.NewReader(data)

	// Read RIFF header
	riff := make([]byte, 4)
	if _, err := io.ReadFull(reader, riff); err != nil {
		return nil, nil, fmt.Errorf("read RIFF header: %w", err)
	}
	if string(riff) != "RIFF" {
		return nil, nil, errNotWAV
	}

	// Skip file size
	reader.Seek(4, io.SeekCurrent)

	// Read WAVE header
	wave := make([]byte, 4)
	if _, err := io.ReadFull(reader, wave); err != nil {
		return nil, nil, fmt.Errorf("read WAVE header: %w", err)
	}
	if string(wave) != "WAVE" {
		return nil, nil, errNotWAV
	}

	format := &wavFormat{}
	var dataStart int64
	var dataSize uint32

	// Read chunks
	for {
		chunkID := make([]byte, 4)
		if _, err := reader.Read(chunkID); err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, err
		}

		var chunkSize uint32
		if err := binary.Read(reader, binary.LittleEndian, &chunkSize); err != nil {
			return nil, nil, err
		}

		chunkIDStr := string(chunkID)

		if chunkIDStr == "fmt " {
			// Read format chunk
			var audioFormat uint16
			binary.Read(reader, binary.LittleEndian, &audioFormat)

			var numChannels uint16
			binary.Read(reader, binary.LittleEndian, &numChannels)
			format.Channels = int(numChannels)

			var sampleRate uint32
			binary.Read(reader, binary.LittleEndian, &sampleRate)
			format.SampleRate = int(sampleRate)

			// Skip byte rate and block align
			reader.Seek(6, io.SeekCurrent)

			var bitsPerSample uint16
			binary.Read(reader, binary.LittleEndian, &bitsPerSample)
			format.BitDepth = int(bitsPerSample)

			// Skip any extra format bytes
			remaining := chunkSize - 16
			if remaining > 0 {
				reader.Seek(int64(remaining), io.SeekCurrent)
			}
		} else if chunkIDStr == "data" {
			// Found data chunk
			dataStart, _ = reader.Seek(0, io.SeekCurrent)
			dataSize = chunkSize
			break
		} else {
			// Skip unknown chunk
			reader.Seek(int64(chunkSize), io.SeekCurrent)
		}
	}

	if format.SampleRate == 0 || format.Channels == 0 {
		return nil, nil, fmt.Errorf("missing fmt chunk: %w", errNotWAV)
	}

	// Read audio data, tolerating a data chunk that claims more than the file holds
	if remaining := int64(len(data)) - dataStart; int64(dataSize) > remaining {
		dataSize = uint32(remaining)
	}
	audioData := make([]byte, dataSize)
	reader.Seek(dataStart, io.SeekStart)
	io.ReadFull(reader, audioData)

	return format, audioData, nil
}
