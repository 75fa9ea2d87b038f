package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/taskdown/taskdown/internal/testsupport"
)

func TestBoardScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/board",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"envset":  testsupport.CmdEnvSet,
			"boardid": testsupport.CmdBoardID,
		},
	})
}
