package entity

import (
	"errors"
	"fmt"
)

// Screen names a place in the app flow.
type Screen string

const (
	SplashScreen   Screen = "SplashScreen"
	LoginScreen    Screen = "LoginScreen"
	RegisterScreen Screen = "RegisterScreen"
	OtpScreen      Screen = "OtpScreen"
	HomeScreen     Screen = "HomeScreen"
)

// ErrUnknownScreen is returned by ParseScreen.
var ErrUnknownScreen = errors.New("unknown screen")

func ParseScreen(s string) (Screen, error) {
	switch sc := Screen(s); sc {
	case SplashScreen, LoginScreen, RegisterScreen, OtpScreen, HomeScreen:
		return sc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScreen, s)
	}
}

func (s Screen) String() string {
	return string(s)
}

// Trigger is what caused a transition.
type Trigger int

const (
	// TriggerUser is a plain tap on a link or button.
	TriggerUser Trigger = iota
	// TriggerTimer is the splash delay elapsing.
	TriggerTimer
	// TriggerLogin is a credential match on the login form.
	TriggerLogin
	// TriggerRegister is a stored registration.
	TriggerRegister
	// TriggerOtp is an accepted one-time passcode.
	TriggerOtp
)

func (t Trigger) String() string {
	switch t {
	case TriggerUser:
		return "user"
	case TriggerTimer:
		return "timer"
	case TriggerLogin:
		return "login"
	case TriggerRegister:
		return "register"
	case TriggerOtp:
		return "otp"
	default:
		return "unknown"
	}
}

// transitions is the directed screen graph and the only trigger allowed on
// each edge. The auth stack is entered at LoginScreen.
var transitions = map[Screen]map[Screen]Trigger{
	SplashScreen:   {LoginScreen: TriggerTimer},
	LoginScreen:    {RegisterScreen: TriggerUser, HomeScreen: TriggerLogin},
	RegisterScreen: {LoginScreen: TriggerUser, OtpScreen: TriggerRegister},
	OtpScreen:      {HomeScreen: TriggerOtp},
	HomeScreen:     {LoginScreen: TriggerUser},
}

// ErrInvalidTransition is returned when an edge is missing from the graph or
// was requested with the wrong trigger.
var ErrInvalidTransition = errors.New("navigation not allowed")

// Navigator tracks the current screen.
type Navigator struct {
	current Screen
}

// NewNavigator starts at SplashScreen.
func NewNavigator() Navigator {
	return Navigator{current: SplashScreen}
}

func (n Navigator) Current() Screen {
	return n.current
}

// CanGo reports whether to is reachable from the current screen with t.
func (n Navigator) CanGo(to Screen, t Trigger) bool {
	want, ok := transitions[n.current][to]
	return ok && want == t
}

// Go moves to the given screen.
func (n *Navigator) Go(to Screen, t Trigger) error {
	if !n.CanGo(to, t) {
		return fmt.Errorf("%w: %s -> %s (%s)", ErrInvalidTransition, n.current, to, t)
	}
	n.current = to
	return nil
}
