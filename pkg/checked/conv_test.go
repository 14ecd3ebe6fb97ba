package checked

import (
	"errors"
	"math"
	"testing"
)

func TestConv_WideningAlwaysFits(t *testing.T) {
	t.Parallel()
	if got, err := Conv[int64](int8(-128)); err != nil || got != -128 {
		t.Fatalf("expected -128, got %d, err %v", got, err)
	}
	if got, err := Conv[uint64](uint8(255)); err != nil || got != 255 {
		t.Fatalf("expected 255, got %d, err %v", got, err)
	}
	if got, err := Conv[int16](uint8(200)); err != nil || got != 200 {
		t.Fatalf("expected 200, got %d, err %v", got, err)
	}
}

func TestConv_NarrowingInRange(t *testing.T) {
	t.Parallel()
	if got, err := Conv[int8](int64(127)); err != nil || got != 127 {
		t.Fatalf("expected 127, got %d, err %v", got, err)
	}
	if got, err := Conv[uint8](uint32(255)); err != nil || got != 255 {
		t.Fatalf("expected 255, got %d, err %v", got, err)
	}
	if got, err := Conv[int8](uint64(0)); err != nil || got != 0 {
		t.Fatalf("expected 0, got %d, err %v", got, err)
	}
}

func TestConv_MagnitudeLoss(t *testing.T) {
	t.Parallel()
	if _, err := Conv[uint8](uint16(300)); err == nil {
		t.Fatalf("300 does not fit uint8")
	} else {
		var ce ConvError[uint16]
		if !errors.As(err, &ce) || ce.Value != 300 || ce.Target != "uint8" {
			t.Fatalf("expected ConvError{300, uint8}, got %v", err)
		}
	}
	if _, err := Conv[int8](int64(128)); err == nil {
		t.Fatalf("128 does not fit int8")
	}
	if _, err := Conv[int32](uint64(math.MaxUint64)); err == nil {
		t.Fatalf("MaxUint64 does not fit int32")
	}
}

func TestConv_SignLoss(t *testing.T) {
	t.Parallel()
	// -1 round-trips bit-wise through uint64, only the sign check catches it
	if _, err := Conv[uint64](int8(-1)); err == nil {
		t.Fatalf("negative value must not convert to an unsigned type")
	}
	if _, err := Conv[uint8](int16(-300)); err == nil {
		t.Fatalf("negative value must not convert to an unsigned type")
	}
	// the high half of uint8 exceeds int8
	if _, err := Conv[int8](uint8(255)); err == nil {
		t.Fatalf("255 does not fit int8")
	}
}
