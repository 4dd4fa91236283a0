// noncache_test.go: unit tests for the null admission policy
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package tracecache

import "testing"

func TestNoCache_NeverAdmits(t *testing.T) {
	p := newNoCachePolicy(1000)
	if p.Admit(Request{Size: 1}) {
		t.Error("expected the null policy to refuse every admission")
	}
	if p.Size() != 0 {
		t.Errorf("Size() = %d, want 0", p.Size())
	}
	if _, ok := p.Lookup("anything"); ok {
		t.Error("expected Lookup to always miss")
	}
}
