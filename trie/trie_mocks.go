// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package trie is a generated GoMock package.
package trie

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockTrie is a mock of Trie interface.
type MockTrie[E comparable, V any] struct {
	ctrl     *gomock.Controller
	recorder *MockTrieMockRecorder[E, V]
	isgomock struct{}
}

// MockTrieMockRecorder is the mock recorder for MockTrie.
type MockTrieMockRecorder[E comparable, V any] struct {
	mock *MockTrie[E, V]
}

// NewMockTrie creates a new mock instance.
func NewMockTrie[E comparable, V any](ctrl *gomock.Controller) *MockTrie[E, V] {
	mock := &MockTrie[E, V]{ctrl: ctrl}
	mock.recorder = &MockTrieMockRecorder[E, V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTrie[E, V]) EXPECT() *MockTrieMockRecorder[E, V] {
	return m.recorder
}

// Get mocks base method.
func (m *MockTrie[E, V]) Get(key []E) (V, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", key)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockTrieMockRecorder[E, V]) Get(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockTrie[E, V])(nil).Get), key)
}

// Insert mocks base method.
func (m *MockTrie[E, V]) Insert(key []E, value V) (V, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", key, value)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Insert indicates an expected call of Insert.
func (mr *MockTrieMockRecorder[E, V]) Insert(key, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockTrie[E, V])(nil).Insert), key, value)
}
