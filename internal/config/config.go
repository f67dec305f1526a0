// Package config holds the defaults shared by the maze command-line tools.
// Defaults may be set in the environment or in a .env file in the working
// directory; command-line flags take precedence over both.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	CellsWideKey  = "MAZE_CELLS_WIDE"
	CellsHighKey  = "MAZE_CELLS_HIGH"
	RandomSeedKey = "MAZE_RANDOM_SEED"
	OutputFileKey = "MAZE_OUTPUT_FILE"
)

// Defaults used when neither the environment nor a flag gives a value.
const (
	DefaultCellsWide = 21
	DefaultCellsHigh = 21
	// Not positive, so a time-based seed will be used.
	DefaultRandomSeed = int64(-1)
)

// Holds the flag defaults for the command-line tools.
type Config struct {
	CellsWide  int    // The width of the maze, in grid cells
	CellsHigh  int    // The height of the maze, in grid cells
	RandomSeed int64  // The seed to use, if positive
	OutputFile string // Where to save an image of the maze
}

// Loads a .env file, if one exists, and then reads the configuration from the
// environment. Values that can't be parsed are replaced by their defaults,
// and reported in the returned error, which may be printed as a warning. The
// returned Config is always usable.
func Load(filenames ...string) (Config, error) {
	var errs []error
	e := godotenv.Load(filenames...)
	// A missing .env file is normal; other problems are worth reporting.
	if (e != nil) && !errors.Is(e, os.ErrNotExist) {
		errs = append(errs, fmt.Errorf("Error loading .env file: %w", e))
	}
	toReturn := Config{
		CellsWide:  DefaultCellsWide,
		CellsHigh:  DefaultCellsHigh,
		RandomSeed: DefaultRandomSeed,
		OutputFile: getEnvWithDefault(OutputFileKey, ""),
	}
	toReturn.CellsWide, e = getEnvAsInt(CellsWideKey, DefaultCellsWide)
	if e != nil {
		errs = append(errs, e)
	}
	toReturn.CellsHigh, e = getEnvAsInt(CellsHighKey, DefaultCellsHigh)
	if e != nil {
		errs = append(errs, e)
	}
	seed, e := getEnvAsInt(RandomSeedKey, int(DefaultRandomSeed))
	if e != nil {
		errs = append(errs, e)
	}
	toReturn.RandomSeed = int64(seed)
	return toReturn, errors.Join(errs...)
}

// Retrieves the value of an environment variable or returns a default value
// if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Retrieves the value of an environment variable as an integer. Returns the
// default value if it's unset, or along with an error if it can't be parsed.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || (valueStr == "") {
		return defaultValue, nil
	}
	value, e := strconv.Atoi(valueStr)
	if e != nil {
		return defaultValue, fmt.Errorf("Environment variable %s must be "+
			"an integer: %w", key, e)
	}
	return value, nil
}
