package main

import (
	"bytes"
	"log"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	chimeSampleRate = 44100
	chimeFrequency  = 880.0
	chimeDuration   = 600 * time.Millisecond
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// initAudioContext initializes the global audio context once
func initAudioContext() {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   chimeSampleRate,
			ChannelCount: 1,
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

// playChime plays a short notification tone without blocking the caller
func playChime() {
	initAudioContext()

	if !audioCtxReady || globalAudioCtx == nil {
		log.Printf("Audio context not ready, skipping chime")
		return
	}

	go func() {
		player := globalAudioCtx.NewPlayer(bytes.NewReader(chimeSamples()))
		player.Play()

		for player.IsPlaying() {
			time.Sleep(time.Millisecond)
		}

		if err := player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}
	}()
}

// chimeSamples synthesizes the tone as signed 16-bit little-endian PCM with
// a linear fade-out so the chime does not end with a click
func chimeSamples() []byte {
	sampleCount := int(float64(chimeSampleRate) * chimeDuration.Seconds())
	data := make([]byte, sampleCount*2)

	for i := 0; i < sampleCount; i++ {
		t := float64(i) / chimeSampleRate
		fade := 1.0 - float64(i)/float64(sampleCount)
		sample := int16(math.Sin(2*math.Pi*chimeFrequency*t) * fade * 0.3 * math.MaxInt16)
		data[i*2] = byte(sample)
		data[i*2+1] = byte(sample >> 8)
	}

	return data
}
