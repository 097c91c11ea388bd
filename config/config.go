package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/GearEightGames/PerformanceBooster/lib/logger"
)

// PoolProperties tune datastruct/pool.
type PoolProperties struct {
	MaxTotal            int    `cfg:"maxtotal"`
	MaxIdle             int    `cfg:"maxidle"`
	MinIdle             int    `cfg:"minidle"`
	InitialCapacity     int    `cfg:"initial-capacity"`
	MaxRetainedCapacity int    `cfg:"max-retained-capacity"`
	BlockWhenExhausted  bool   `cfg:"block-when-exhausted"`
	LogLevel            string `cfg:"loglevel"`
}

var Properties *PoolProperties

func init() {
	Properties = Default()
	if err := logger.SetLevel(Properties.LogLevel); err != nil {
		logger.Warn(err)
	}
}

func Default() *PoolProperties {
	return &PoolProperties{
		MaxTotal:            64,
		MaxIdle:             16,
		MinIdle:             0,
		InitialCapacity:     16,
		MaxRetainedCapacity: 4096,
		BlockWhenExhausted:  true,
		LogLevel:            "info",
	}
}

// SetupConfigProperties loads filename over the defaults, replaces Properties
// and applies the configured log level.
func SetupConfigProperties(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	p, err := Parse(file)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	if p.LogLevel != "" {
		if err := logger.SetLevel(p.LogLevel); err != nil {
			return err
		}
	}
	Properties = p
	logger.Infof("pool properties loaded from %s", filename)
	return nil
}

// Parse reads "key value" lines; lines starting with # are skipped and
// unknown keys are ignored.
func Parse(reader io.Reader) (*PoolProperties, error) {
	res := Default()
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " \t")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.TrimSpace(line[pivot+1:])
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := fillProperties(res, m); err != nil {
		return nil, err
	}
	return res, nil
}

func fillProperties(p *PoolProperties, m map[string]string) error {
	fields := reflect.TypeOf(p).Elem()
	values := reflect.ValueOf(p).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			fieldVal.SetInt(intV)
		case reflect.Bool:
			fieldVal.SetBool("yes" == val)
		}
	}
	return nil
}
