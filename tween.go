package main

// Action is what runs alongside a tween: onChange applies the current
// value each frame, onFinish fires once when the tween completes.
type Action struct {
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}
