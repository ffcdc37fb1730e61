package ui

import "testing"

func feed(k *Konami, keys ...string) bool {
	done := false
	for _, key := range keys {
		if k.Observe(key) {
			done = true
		}
	}
	return done
}

func TestKonamiExactSequence(t *testing.T) {
	var k Konami
	if !feed(&k, "up", "up", "down", "down", "left", "right", "left", "right", "b", "a") {
		t.Error("exact sequence should trigger")
	}
}

func TestKonamiWithLeadingNoise(t *testing.T) {
	var k Konami
	if !feed(&k, "j", "q", "up", "up", "up", "down", "down", "left", "right", "left", "right", "b", "a") {
		t.Error("sequence should trigger despite leading noise and extra ups")
	}
}

func TestKonamiInterruptedSequence(t *testing.T) {
	var k Konami
	if feed(&k, "up", "up", "down", "down", "left", "right", "left", "right", "b", "q", "a") {
		t.Error("interrupted sequence must not trigger")
	}
}

func TestKonamiResetsAfterTrigger(t *testing.T) {
	var k Konami
	feed(&k, "up", "up", "down", "down", "left", "right", "left", "right", "b", "a")
	if feed(&k, "a") {
		t.Error("detector must reset after a completed sequence")
	}
	if !feed(&k, "up", "up", "down", "down", "left", "right", "left", "right", "b", "a") {
		t.Error("sequence should trigger again after reset")
	}
}
