package stt

import (
	"encoding/binary"
	"testing"
)

func TestEncodePCM16ClipsOutOfRangeSamples(t *testing.T) {
	pcm := encodePCM16([]float32{2.0, -2.0, 0})

	if len(pcm) != 6 {
		t.Fatalf("Expected 6 bytes, got %d", len(pcm))
	}
	if v := int16(binary.LittleEndian.Uint16(pcm[0:])); v != 32767 {
		t.Errorf("Expected positive clip to 32767, got %d", v)
	}
	if v := int16(binary.LittleEndian.Uint16(pcm[2:])); v != -32767 {
		t.Errorf("Expected negative clip to -32767, got %d", v)
	}
	if v := int16(binary.LittleEndian.Uint16(pcm[4:])); v != 0 {
		t.Errorf("Expected zero sample, got %d", v)
	}
}

func TestEncodeWAVHeader(t *testing.T) {
	samples := make([]float32, 160)
	wav := encodeWAV(samples, 16000)

	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Error("Expected RIFF/WAVE container markers")
	}
	if string(wav[36:40]) != "data" {
		t.Error("Expected data chunk marker at offset 36")
	}

	dataLen := binary.LittleEndian.Uint32(wav[40:44])
	if dataLen != uint32(len(samples)*2) {
		t.Errorf("Expected data length %d, got %d", len(samples)*2, dataLen)
	}
	if len(wav) != 44+len(samples)*2 {
		t.Errorf("Expected total size %d, got %d", 44+len(samples)*2, len(wav))
	}

	rate := binary.LittleEndian.Uint32(wav[24:28])
	if rate != 16000 {
		t.Errorf("Expected sample rate 16000 in header, got %d", rate)
	}
}
