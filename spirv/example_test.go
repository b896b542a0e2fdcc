package spirv_test

import (
	"fmt"
	"strings"

	"github.com/gogpu/spvc/spirv"
)

// fragmentMain builds an empty fragment entry point writing to one output.
func fragmentMain() (*spirv.Module, error) {
	builder := spirv.NewModuleBuilder(spirv.Version1_0)
	builder.AddCapability(spirv.CapabilityShader)
	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)

	voidType := builder.AddTypeVoid()
	vec4Type := builder.AddTypeVector(builder.AddTypeFloat(32), 4)
	outputType := builder.AddTypePointer(spirv.StorageClassOutput, vec4Type)
	color := builder.AddVariable(outputType, spirv.StorageClassOutput)
	builder.AddDecorate(color, spirv.DecorationLocation, 0)

	main, err := builder.BeginFunction(voidType, spirv.FunctionControlNone, builder.AddTypeFunction(voidType))
	if err != nil {
		return nil, err
	}
	if _, err := builder.BeginBlock(); err != nil {
		return nil, err
	}
	if err := builder.AddReturn(); err != nil {
		return nil, err
	}
	if err := builder.EndFunction(); err != nil {
		return nil, err
	}
	builder.AddEntryPoint(spirv.ExecutionModelFragment, main, "main", []uint32{color})
	builder.AddExecutionMode(main, spirv.ExecutionModeOriginUpperLeft)

	return builder.Module()
}

// ExampleModule_EntryPoints decodes the entry points of a finished module.
func ExampleModule_EntryPoints() {
	module, err := fragmentMain()
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	entryPoints, err := module.EntryPoints()
	if err != nil {
		fmt.Println("decode:", err)
		return
	}
	for _, ep := range entryPoints {
		fmt.Printf("%s %q function=%d interfaces=%v\n", ep.Model, ep.Name, ep.Function, ep.Interfaces)
	}
	fmt.Println("bound:", module.Bound())
	// Output:
	// Fragment "main" function=7 interfaces=[5]
	// bound: 9
}

// ExampleDisassembleString prints the instructions of a small module.
func ExampleDisassembleString() {
	builder := spirv.NewModuleBuilder(spirv.Version1_0)
	builder.AddCapability(spirv.CapabilityShader)
	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
	floatType := builder.AddTypeFloat(32)
	builder.AddName(floatType, "float")
	builder.AddTypeVector(floatType, 3)

	text, err := spirv.DisassembleString(builder.Words())
	if err != nil {
		fmt.Println("disassemble:", err)
		return
	}
	for line := range strings.Lines(text) {
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, ";") {
			fmt.Println(line)
		}
	}
	// Output:
	// OpCapability Shader
	// OpMemoryModel Logical GLSL450
	// OpName %_1 "float"
	// %_1 = OpTypeFloat 32
	// %_2 = OpTypeVector %_1 3
}

// ExampleModuleBuilder_Module shows that an unterminated function is
// reported when the module is finalized.
func ExampleModuleBuilder_Module() {
	builder := spirv.NewModuleBuilder(spirv.Version1_0)
	voidType := builder.AddTypeVoid()
	if _, err := builder.BeginFunction(voidType, spirv.FunctionControlNone, builder.AddTypeFunction(voidType)); err != nil {
		fmt.Println("begin:", err)
		return
	}

	_, err := builder.Module()
	fmt.Println(err != nil, builder.InFunction())
	// Output: true true
}
