// Package spirv provides a low-level SPIR-V binary encoder and disassembler.
//
// SPIR-V is the standard intermediate language for GPU shaders,
// used by Vulkan, OpenCL, and other APIs.
//
// # Binary Writer
//
// ModuleBuilder constructs SPIR-V modules programmatically. Module-level
// instructions may be emitted in any order; Words sorts them into the
// section layout required by the SPIR-V specification:
//
//	builder := spirv.NewModuleBuilder(spirv.Version1_3)
//	builder.AddCapability(spirv.CapabilityShader)
//	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
//
//	floatType := builder.AddTypeFloat(32)
//	vec4Type := builder.AddTypeVector(floatType, 4)
//
//	module, err := builder.Module()
//
// Function bodies are emitted between BeginFunction and EndFunction.
// Instructions outside an open basic block are rejected with a *BuilderError.
//
// # SPIR-V Structure
//
// SPIR-V modules consist of:
//   - Header (magic, version, generator, bound, schema)
//   - Capabilities (required features)
//   - Extensions (optional extensions)
//   - Extended instruction imports (GLSL.std.450, etc.)
//   - Memory model (addressing and memory model)
//   - Entry points (shader entry functions)
//   - Execution modes (shader configuration)
//   - Debug information (names, source info)
//   - Annotations (decorations)
//   - Types and constants
//   - Global variables
//   - Functions (code)
//
// # Disassembly
//
// Disassemble renders a module in the textual .spvasm form used by
// spirv-dis, which is handy for golden comparisons and debugging.
//
// # References
//
// SPIR-V Specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
package spirv
