package entity

import "testing"

func canTransition(from, to string) bool {
	for _, s := range ValidRequestTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TestRequestStatusTransitions verifies the transfer request state machine
func TestRequestStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to string }{
		{RequestStatusPending, RequestStatusApproved},
		{RequestStatusPending, RequestStatusCancelled},
		{RequestStatusApproved, RequestStatusInTransit},
		{RequestStatusApproved, RequestStatusCancelled},
		{RequestStatusInTransit, RequestStatusReceived},
		{RequestStatusInTransit, RequestStatusCancelled},
	}
	for _, tr := range allowed {
		if !canTransition(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	forbidden := []struct{ from, to string }{
		{RequestStatusPending, RequestStatusReceived},
		{RequestStatusPending, RequestStatusInTransit},
		{RequestStatusApproved, RequestStatusReceived},
		{RequestStatusReceived, RequestStatusPending},
		{RequestStatusCancelled, RequestStatusPending},
		{RequestStatusCancelled, RequestStatusApproved},
	}
	for _, tr := range forbidden {
		if canTransition(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be rejected", tr.from, tr.to)
		}
	}

	// 终态不允许任何流转
	for _, terminal := range []string{RequestStatusReceived, RequestStatusCancelled} {
		if len(ValidRequestTransitions[terminal]) != 0 {
			t.Errorf("expected %s to be terminal", terminal)
		}
	}
}
