package store

// TaskStore owns one State and the environment used to advance it. It is not
// safe for concurrent use; the UI loop is its only caller.
type TaskStore struct {
	state State
	env   Env
}

func NewTaskStore(initial State, env Env) *TaskStore {
	return &TaskStore{state: initial, env: env}
}

func (t *TaskStore) State() State {
	return t.state
}

func (t *TaskStore) Dispatch(a Action) []Effect {
	next, effects := Apply(t.state, a, t.env)
	t.state = next
	return effects
}

func (t *TaskStore) AddTask(text string) []Effect {
	return t.Dispatch(AddTask{Text: text})
}

func (t *TaskStore) ToggleTask(id string) []Effect {
	return t.Dispatch(ToggleTask{ID: id})
}

func (t *TaskStore) DeleteTask(id string) []Effect {
	return t.Dispatch(DeleteTask{ID: id})
}

func (t *TaskStore) ToggleMode() []Effect {
	return t.Dispatch(ToggleMode{})
}

func (t *TaskStore) RestAtBonfire() []Effect {
	return t.Dispatch(RestAtBonfire{})
}

func (t *TaskStore) UnlockAchievement(title, description string) []Effect {
	return t.Dispatch(UnlockAchievement{Title: title, Description: description})
}

func (t *TaskStore) Expire(kind TimerKind, token string) []Effect {
	return t.Dispatch(ExpireTimer{Kind: kind, Token: token})
}
