//go:build boosterdebug

package list

import (
	"fmt"

	"github.com/GearEightGames/PerformanceBooster/lib/logger"
)

func assertIndex(index, size int) {
	if index < 0 || index >= size {
		msg := fmt.Sprintf("index %d out of range [0, %d)", index, size)
		logger.Error(msg)
		panic(msg)
	}
}
