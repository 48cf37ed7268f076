// Package generator turns rendered templates into files without ever
// replacing one that is already there.
//
// A generator renders its content up front and returns a list of
// operations. Execute then walks the list, checking and writing one file at
// a time:
//
//	r := generator.NewRenderer(templatesFS)
//	content, err := r.Render("templates/CMakeLists.txt.tmpl", data)
//	...
//	ops := []generator.Operation{
//	    &generator.WriteFileOp{Dir: dir, Name: "CMakeLists.txt", Content: content},
//	}
//	err = generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: os.Stdout})
//
// A *ConflictError names the first file that already existed. Files written
// before it stay on disk.
package generator
