package resources

import (
	"testing"

	"invoker-go/domain/scenario"
)

func TestScenarioFiles_Load(t *testing.T) {
	reg := scenario.NewRegistry()
	if err := scenario.NewLoader(reg).LoadFromFS(ScenarioFiles); err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}

	hello := reg.Get("hello")
	if hello == nil {
		t.Fatal("hello scenario not embedded")
	}
	if hello.OnStart == nil || hello.OnStart.Payload != "Say Hi!" {
		t.Errorf("hello onStart = %+v, want simple command with payload Say Hi!", hello.OnStart)
	}
	if hello.OnFinish == nil || hello.OnFinish.A != "Send email" || hello.OnFinish.B != "Save report" {
		t.Errorf("hello onFinish = %+v, want complex command (Send email, Save report)", hello.OnFinish)
	}

	if !reg.Exists("bare") {
		t.Error("bare scenario not embedded")
	}
}
