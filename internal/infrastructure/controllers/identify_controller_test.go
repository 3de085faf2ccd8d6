//go:build unit

package controllers_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/infrastructure/controllers"
	commanddoubles "github.com/rios0rios0/codestream-agent/test/domain/commanddoubles"
)

func TestIdentifyController(t *testing.T) {
	t.Parallel()

	t.Run("should report every path in argument order", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubIdentifyRepoCommand{
			Results: map[string]entities.IdentifyRepoResult{
				"/repos/web": {ProjectType: entities.ProjectTypeNodeJS},
				"/repos/api": {
					ProjectType: entities.ProjectTypeDotNetCore,
					Projects:    []entities.Project{{Path: "/repos/api/src", Name: "Api", Version: "net8.0"}},
				},
			},
			Errors: map[string]error{"/repos/broken": errors.New("permission denied")},
		}
		controller := controllers.NewIdentifyController(stub)
		cmd, out := newCommand(t, testConfig)

		// when
		controller.Execute(cmd, []string{"/repos/web", "/repos/broken", "/repos/api", "/repos/plain"})

		// then
		var printed []controllers.IdentifiedRepo
		require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
		assert.Equal(t, []controllers.IdentifiedRepo{
			{Path: "/repos/web", IdentifyRepoResult: entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeNodeJS}},
			{Path: "/repos/broken", IdentifyRepoResult: entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeUnknown}},
			{Path: "/repos/api", IdentifyRepoResult: stub.Results["/repos/api"]},
			{Path: "/repos/plain", IdentifyRepoResult: entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeUnknown}},
		}, printed)
		assert.Equal(t, 4, stub.ExecuteCallCount)
	})

	t.Run("should default to the current directory", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubIdentifyRepoCommand{
			Results: map[string]entities.IdentifyRepoResult{".": {ProjectType: entities.ProjectTypeJava}},
		}
		controller := controllers.NewIdentifyController(stub)
		cmd, out := newCommand(t, testConfig)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Contains(t, out.String(), `"projectType": "Java"`)
		assert.Contains(t, out.String(), `"path": "."`)
	})
}
