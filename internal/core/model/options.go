package model

// OptionKey identifies an editable workout parameter.
type OptionKey int

const (
	OptionExerciseTime OptionKey = iota
	OptionExerciseQuantity
	OptionExerciseRestTime
	OptionSetQuantity
	OptionSetRestTime
)

// Option is one editable workout parameter with its label and upper bound.
type Option struct {
	Key     OptionKey
	Name    string
	Seconds bool
	Value   int
	Max     int
}

// Options holds the five parameters in display order.
type Options [5]Option

// DefaultOptions returns the parameters shown on first start.
func DefaultOptions() Options {
	return Options{
		{Key: OptionExerciseTime, Name: "Exercise time", Seconds: true, Value: 45, Max: 600},
		{Key: OptionExerciseQuantity, Name: "Exercises per set", Value: 10, Max: 20},
		{Key: OptionExerciseRestTime, Name: "Rest between exercises", Seconds: true, Value: 15, Max: 600},
		{Key: OptionSetQuantity, Name: "Number of sets", Value: 3, Max: 20},
		{Key: OptionSetRestTime, Name: "Rest between sets", Seconds: true, Value: 120, Max: 600},
	}
}

// Get returns the current value of key.
func (options Options) Get(key OptionKey) int {
	return options[key].Value
}

// With returns a copy with key set to value, clamped to 1..Max.
func (options Options) With(key OptionKey, value int) Options {
	option := &options[key]
	if value < 1 {
		value = 1
	}
	if option.Max > 0 && value > option.Max {
		value = option.Max
	}
	option.Value = value
	return options
}

// Config converts the options into a WorkoutConfig.
func (options Options) Config() WorkoutConfig {
	return WorkoutConfig{
		ExerciseTime:     options.Get(OptionExerciseTime),
		ExerciseQuantity: options.Get(OptionExerciseQuantity),
		ExerciseRestTime: options.Get(OptionExerciseRestTime),
		SetQuantity:      options.Get(OptionSetQuantity),
		SetRestTime:      options.Get(OptionSetRestTime),
	}
}

// FromConfig returns options carrying the values of config, clamped to the bounds.
func (options Options) FromConfig(config WorkoutConfig) Options {
	return options.
		With(OptionExerciseTime, config.ExerciseTime).
		With(OptionExerciseQuantity, config.ExerciseQuantity).
		With(OptionExerciseRestTime, config.ExerciseRestTime).
		With(OptionSetQuantity, config.SetQuantity).
		With(OptionSetRestTime, config.SetRestTime)
}
