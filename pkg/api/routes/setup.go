package routes

import (
	"github.com/gareboard/gareboard/pkg/api/cachedboards"
	"github.com/gareboard/gareboard/pkg/inputs"
)

var (
	inputProvider    inputs.Provider
	stationDirectory *inputs.CachedDirectory
	boardCache       *cachedboards.Cache
)

func Setup(provider inputs.Provider, directory *inputs.CachedDirectory, cache *cachedboards.Cache) {
	inputProvider = provider
	stationDirectory = directory
	boardCache = cache
}
