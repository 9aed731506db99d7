package logger

import (
	"sort"
	"sync"
)

// registry holds the process-wide named loggers.
var registry = struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}{
	loggers: make(map[string]*Logger),
}

// Register stores a named logger in the registry, replacing any previous
// entry under the same name.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
}

// Get retrieves a named logger. If the name is not registered it returns the
// global logger tagged with the requested component name.
func Get(name string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[name]
	registry.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// Registered returns the sorted names of all registered loggers.
func Registered() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.loggers))
	for name := range registry.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterDefaults registers a set of named loggers from the global config.
// Call this after Init() to seed the registry with common component loggers.
func RegisterDefaults(names ...string) {
	for _, name := range names {
		Register(name, GetGlobalLogger().WithComponent(name))
	}
}
