package mcp

import "fmt"

// parseStringArg extracts a string argument from an MCP arguments map.
// Returns an error if the argument is required but missing or invalid.
func parseStringArg(argsMap map[string]interface{}, key string, required bool) (string, error) {
	val, ok := argsMap[key]
	if !ok {
		if required {
			return "", fmt.Errorf("%s parameter is required", key)
		}
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}

	if required && str == "" {
		return "", fmt.Errorf("%s cannot be empty", key)
	}

	return str, nil
}

// parsePositionArg extracts a 1-based line or column.
// Returns nil if the argument is missing; MCP sends numbers as float64.
func parsePositionArg(argsMap map[string]interface{}, key string) (*int, error) {
	val, ok := argsMap[key]
	if !ok {
		return nil, nil
	}

	f, ok := val.(float64)
	if !ok {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	if f < 1 || f != float64(int(f)) {
		return nil, fmt.Errorf("%s must be a positive integer, got %v", key, f)
	}

	result := int(f)
	return &result, nil
}
