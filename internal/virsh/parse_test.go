package virsh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listAllOutput = ` Id   Name            State
---------------------------------------
 1    web-frontend    running
 7    db              paused
 -    build-runner    shut off

`

func TestParseList(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		wantRecords []VMRecord
		wantSkipped int
		wantErr     error
	}{
		{
			name:   "all domains with multi-word state",
			output: listAllOutput,
			wantRecords: []VMRecord{
				{ID: "1", Name: "web-frontend", State: StateRunning},
				{ID: "7", Name: "db", State: "paused"},
				{ID: "-", Name: "build-runner", State: StateShutOff},
			},
		},
		{
			name:        "header only",
			output:      " Id   Name   State\n--------------------\n\n",
			wantRecords: nil,
		},
		{
			name:        "empty output",
			output:      "",
			wantRecords: nil,
		},
		{
			name: "malformed row is skipped and counted",
			output: ` Id   Name   State
----------------------
 1    a      running
 garbage
`,
			wantRecords: []VMRecord{{ID: "1", Name: "a", State: StateRunning}},
			wantSkipped: 1,
		},
		{
			name: "non numeric id is skipped",
			output: ` Id   Name   State
----------------------
 x    a      running
 2    b      running
`,
			wantRecords: []VMRecord{{ID: "2", Name: "b", State: StateRunning}},
			wantSkipped: 1,
		},
		{
			name: "wide columns",
			output: " Id    Name                                 State\n" +
				"---------------------------------------------------\n" +
				" 12    a-very-long-domain-name-for-testing  in shutdown\n",
			wantRecords: []VMRecord{{ID: "12", Name: "a-very-long-domain-name-for-testing", State: "in shutdown"}},
		},
		{
			name:    "no header is a parse failure",
			output:  "Name,State\nvm1,running\n",
			wantErr: ErrParseFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseList(tt.output)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRecords, got.Records)
			assert.Equal(t, tt.wantSkipped, got.Skipped)
		})
	}
}

func TestParseDomIfAddr(t *testing.T) {
	out := ` Name       MAC address          Protocol     Address
-------------------------------------------------------------------------------
 vnet0      52:54:00:aa:bb:cc    ipv6         fe80::5054:ff:feaa:bbcc/64
 vnet0      52:54:00:aa:bb:cc    ipv4         192.168.122.45/24
`
	addr, ok := ParseDomIfAddr(out)
	assert.True(t, ok)
	assert.Equal(t, "192.168.122.45", addr)

	_, ok = ParseDomIfAddr(" Name   MAC address   Protocol   Address\n------\n")
	assert.False(t, ok)
}

func TestVMStatePredicates(t *testing.T) {
	assert.True(t, StateRunning.IsRunning())
	assert.False(t, StateRunning.IsShutOff())
	assert.True(t, StateShutOff.IsShutOff())
	assert.False(t, VMState("paused").IsRunning())
	assert.False(t, VMState("paused").IsShutOff())
}
