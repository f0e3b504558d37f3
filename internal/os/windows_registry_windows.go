//go:build windows

// Package os provides operating system specific probes for device
// information collection.
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import "golang.org/x/sys/windows/registry"

const machineGUIDRegistryPath = `SOFTWARE\Microsoft\Cryptography`

func readMachineGUID() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, machineGUIDRegistryPath, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	guid, _, err := key.GetStringValue("MachineGuid")
	if err != nil {
		return "", err
	}
	return guid, nil
}
