package boot_test

import (
	"testing"

	"github.com/sghaida/ovm/boot"
	"github.com/sghaida/ovm/dialogs"
	"github.com/sghaida/ovm/locator"
	"github.com/sghaida/ovm/messenger"
	"github.com/sghaida/ovm/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The boot package is process-wide state, so none of these run in parallel;
// every test starts from a clean slate instead.

type recordingVisualizer struct {
	messages []string
}

func (v *recordingVisualizer) ShowMessage(title, _ string) error {
	v.messages = append(v.messages, title)
	return nil
}

func (v *recordingVisualizer) ShowError(title string, _ error) error {
	v.messages = append(v.messages, title)
	return nil
}

func TestInitDefault_RegistersDefaultServices(t *testing.T) {
	boot.ResetForTesting()
	t.Cleanup(boot.ResetForTesting)

	l, err := boot.InitDefault()
	require.NoError(t, err)
	require.NotNil(t, l)

	nav, ok := locator.Resolve[navigation.Navigator](l)
	require.True(t, ok)
	assert.IsType(t, &navigation.Stack{}, nav)

	viz, ok := locator.Resolve[dialogs.MessageVisualizer](l)
	require.True(t, ok)
	assert.IsType(t, &dialogs.Console{}, viz)

	msg, ok := locator.Resolve[*messenger.Messenger](l)
	require.True(t, ok)
	assert.NotNil(t, msg)

	// Registered as a singleton, not handed out by self-construction.
	again, ok := locator.Resolve[*messenger.Messenger](l)
	require.True(t, ok)
	assert.Same(t, msg, again)

	// The locator resolves itself.
	self, ok := locator.Resolve[*locator.Locator](l)
	require.True(t, ok)
	assert.Same(t, l, self)
}

func TestInit_FlagsSelectServices(t *testing.T) {
	boot.ResetForTesting()
	t.Cleanup(boot.ResetForTesting)

	l, err := boot.Init(nil, boot.WithNavigator)
	require.NoError(t, err)

	_, ok := locator.Resolve[navigation.Navigator](l)
	assert.True(t, ok)
	_, ok = locator.Resolve[dialogs.MessageVisualizer](l)
	assert.False(t, ok)

	// *messenger.Messenger is concrete, so resolution self-constructs one
	// either way; without the flag there is no registered singleton, and
	// every Global resolution yields a distinct instance.
	first, ok := locator.Resolve[*messenger.Messenger](l)
	require.True(t, ok)
	second, ok := locator.Resolve[*messenger.Messenger](l)
	require.True(t, ok)
	assert.NotSame(t, first, second)
}

func TestInit_SecondCallIsNoOpAndIgnoresFlags(t *testing.T) {
	boot.ResetForTesting()
	t.Cleanup(boot.ResetForTesting)

	first, err := boot.Init(nil, boot.WithNavigator)
	require.NoError(t, err)

	// Asking for everything on the second call changes nothing.
	second, err := boot.Init(nil, boot.DefaultFlags)
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, ok := locator.Resolve[dialogs.MessageVisualizer](second)
	assert.False(t, ok, "second Init must not re-run default registrations")
}

func TestInit_ExplicitLocatorAfterExplicitInit(t *testing.T) {
	boot.ResetForTesting()
	t.Cleanup(boot.ResetForTesting)

	locA := locator.New()
	_, err := boot.Init(locA, boot.DefaultFlags)
	require.NoError(t, err)

	locB := locator.New()
	_, err = boot.Init(locB, boot.DefaultFlags)
	require.ErrorIs(t, err, boot.ErrAlreadyBound)

	// Even re-supplying the already-bound locator is a usage error:
	// explicit initialization happens exactly once, before first use.
	_, err = boot.Init(locA, boot.DefaultFlags)
	require.ErrorIs(t, err, boot.ErrAlreadyBound)
}

func TestInit_ExplicitLocatorAfterFirstAccess(t *testing.T) {
	boot.ResetForTesting()
	t.Cleanup(boot.ResetForTesting)

	// A plain accessor touch already binds the default locator.
	_ = boot.Locator()

	_, err := boot.Init(locator.New(), boot.DefaultFlags)
	require.ErrorIs(t, err, boot.ErrAlreadyBound)
}

func TestLocator_AccessThenImplicitInitSharesTheLocator(t *testing.T) {
	boot.ResetForTesting()
	t.Cleanup(boot.ResetForTesting)

	accessed := boot.Locator()

	initialized, err := boot.Init(nil, boot.DefaultFlags)
	require.NoError(t, err)
	assert.Same(t, accessed, initialized)
	assert.Same(t, accessed, boot.Locator())
}

func TestInit_PreRegisteredImplementationSurvives(t *testing.T) {
	boot.ResetForTesting()
	t.Cleanup(boot.ResetForTesting)

	l := locator.New()
	mine := &recordingVisualizer{}
	require.NoError(t, locator.RegisterInstance[dialogs.MessageVisualizer](l, mine))

	_, err := boot.Init(l, boot.DefaultFlags)
	require.NoError(t, err)

	got, ok := locator.Resolve[dialogs.MessageVisualizer](l)
	require.True(t, ok)
	assert.Same(t, mine, got)
}

func TestResetForTesting(t *testing.T) {
	boot.ResetForTesting()
	t.Cleanup(boot.ResetForTesting)

	before, err := boot.InitDefault()
	require.NoError(t, err)

	boot.ResetForTesting()

	after := boot.Locator()
	assert.NotSame(t, before, after)

	// The library is re-initializable after a reset.
	again, err := boot.InitDefault()
	require.NoError(t, err)
	assert.Same(t, after, again)
}
