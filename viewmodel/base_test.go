package viewmodel_test

import (
	"testing"

	"github.com/sghaida/ovm/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginViewModel struct {
	viewmodel.Base
	username string
	attempts int
}

func (vm *loginViewModel) SetUsername(v string) bool {
	return viewmodel.Set(&vm.Base, &vm.username, v, "Username")
}

func (vm *loginViewModel) SetAttempts(v int) bool {
	return viewmodel.Set(&vm.Base, &vm.attempts, v, "Attempts")
}

func TestSet_RaisesOnlyOnChange(t *testing.T) {
	t.Parallel()

	vm := &loginViewModel{}
	var raised []string
	vm.ObserveChanged(func(property string) { raised = append(raised, property) })

	assert.True(t, vm.SetUsername("ada"))
	assert.Equal(t, []string{"Username"}, raised)

	// Same value again: no assignment, no notification.
	assert.False(t, vm.SetUsername("ada"))
	assert.Equal(t, []string{"Username"}, raised)

	assert.True(t, vm.SetAttempts(1))
	assert.Equal(t, []string{"Username", "Attempts"}, raised)
}

func TestObserveChanged_OrderAndRemoval(t *testing.T) {
	t.Parallel()

	vm := &loginViewModel{}
	var order []string
	removeFirst := vm.ObserveChanged(func(string) { order = append(order, "first") })
	vm.ObserveChanged(func(string) { order = append(order, "second") })

	vm.RaisePropertyChanged("Username")
	require.Equal(t, []string{"first", "second"}, order)

	removeFirst()
	removeFirst() // double removal is a no-op

	vm.RaisePropertyChanged("Username")
	assert.Equal(t, []string{"first", "second", "second"}, order)
}

func TestObserveChanged_NilListener(t *testing.T) {
	t.Parallel()

	vm := &loginViewModel{}
	remove := vm.ObserveChanged(nil)
	require.NotNil(t, remove)
	remove()

	assert.NotPanics(t, func() { vm.RaisePropertyChanged("Username") })
}

func TestSet_NilGuards(t *testing.T) {
	t.Parallel()

	vm := &loginViewModel{}
	assert.False(t, viewmodel.Set[string](nil, &vm.username, "x", "Username"))
	assert.False(t, viewmodel.Set[string](&vm.Base, nil, "x", "Username"))
}
