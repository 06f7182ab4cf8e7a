/*
Package typeloader maps fully-qualified type names to registered Go types.

It plays the role a class loader plays on managed runtimes: discovery
enumerates candidate names out of deployed code units and asks the
loader to resolve each one. Only registered names resolve; loading a
reference never runs initialization side effects.

Registration is explicit, typically from init functions or generated
code:

	var loader = typeloader.NewLoader()

	func init() {
	    loader.MustRegister(typeloader.Ref[Player]("com.acme.app.Player"))
	    loader.MustRegister(typeloader.Ref[ColorSerializer]("com.acme.app.ColorSerializer"))
	    loader.MustRegister(typeloader.AbstractRef[BaseRecord]("com.acme.app.BaseRecord"))
	}

The loader is thread-safe and should be fully populated before the
discovery pass runs.
*/
package typeloader
