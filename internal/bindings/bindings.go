//go:build cgo

package bindings

/*
#cgo linux LDFLAGS: -ldl
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

#ifdef _WIN32
#include <windows.h>
#else
#include <dlfcn.h>
#endif

typedef struct {
	const char* content;
	uint32_t len;
} tc_string_t;

typedef struct {
	tc_string_t result_json;
	tc_string_t error_json;
} tc_response_t;

typedef uint32_t (*tc_create_context_fn)(void);
typedef void (*tc_destroy_context_fn)(uint32_t);
typedef const void* (*tc_json_request_fn)(uint32_t, tc_string_t, tc_string_t);
typedef tc_response_t (*tc_read_json_response_fn)(const void*);
typedef void (*tc_destroy_json_response_fn)(const void*);

// tcb_open returns NULL on failure. POSIX hosts report through *msg (a
// malloc'd copy of dlerror, owned by the caller); Windows hosts through *code.
static void* tcb_open(const char* path, char** msg, uint32_t* code) {
	*msg = NULL;
	*code = 0;
#ifdef _WIN32
	HMODULE h = LoadLibraryA(path);
	if (h == NULL) {
		*code = (uint32_t)GetLastError();
	}
	return (void*)h;
#else
	void* h = dlopen(path, RTLD_NOW | RTLD_LOCAL);
	if (h == NULL) {
		const char* err = dlerror();
		if (err != NULL) {
			*msg = strdup(err);
		}
	}
	return h;
#endif
}

static void* tcb_sym(void* lib, const char* name) {
#ifdef _WIN32
	return (void*)GetProcAddress((HMODULE)lib, name);
#else
	return dlsym(lib, name);
#endif
}

static uint32_t tcb_create_context(void* fn) {
	return ((tc_create_context_fn)fn)();
}

static void tcb_destroy_context(void* fn, uint32_t context) {
	((tc_destroy_context_fn)fn)(context);
}

static const void* tcb_json_request(void* fn, uint32_t context,
                                    const char* method, uint32_t method_len,
                                    const char* params, uint32_t params_len) {
	tc_string_t m = { method, method_len };
	tc_string_t p = { params, params_len };
	return ((tc_json_request_fn)fn)(context, m, p);
}

static tc_response_t tcb_read_json_response(void* fn, const void* response) {
	return ((tc_read_json_response_fn)fn)(response);
}

static void tcb_destroy_json_response(void* fn, const void* response) {
	((tc_destroy_json_response_fn)fn)(response);
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Library is a mapped native module with every tc_* export resolved.
type Library struct {
	path   string
	handle unsafe.Pointer

	createContext       unsafe.Pointer
	destroyContext      unsafe.Pointer
	jsonRequest         unsafe.Pointer
	readJSONResponse    unsafe.Pointer
	destroyJSONResponse unsafe.Pointer

	responses *registry[unsafe.Pointer]
}

// Open maps the module at path (a bare file name goes through the platform
// search path) and resolves the ABI. Modules are never unloaded.
func Open(path string) (*Library, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var msg *C.char
	var code C.uint32_t
	h := C.tcb_open(cPath, &msg, &code)
	if h == nil {
		if msg != nil {
			defer C.free(unsafe.Pointer(msg))
			return nil, classifyDlerror(path, C.GoString(msg))
		}
		if code != 0 {
			return nil, classifyWinError(path, uint32(code))
		}
		return nil, fmt.Errorf("%w: %s", ErrLoad, path)
	}

	lib := &Library{path: path, handle: h, responses: newRegistry[unsafe.Pointer]()}
	targets := []*unsafe.Pointer{
		&lib.createContext,
		&lib.destroyContext,
		&lib.jsonRequest,
		&lib.readJSONResponse,
		&lib.destroyJSONResponse,
	}
	for i, name := range Symbols {
		sym, err := lib.sym(name)
		if err != nil {
			return nil, err
		}
		*targets[i] = sym
	}
	return lib, nil
}

func (l *Library) sym(name string) (unsafe.Pointer, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	p := C.tcb_sym(l.handle, cName)
	if p == nil {
		return nil, fmt.Errorf("%w: %s in %s", ErrSymbol, name, l.path)
	}
	return p, nil
}

// Path returns the path the library was opened with.
func (l *Library) Path() string { return l.path }

func (l *Library) CreateContext() Context {
	return Context(C.tcb_create_context(l.createContext))
}

func (l *Library) DestroyContext(ctx Context) {
	C.tcb_destroy_context(l.destroyContext, C.uint32_t(ctx))
}

func (l *Library) JSONRequest(ctx Context, method, params string) Response {
	cMethod := C.CString(method)
	defer C.free(unsafe.Pointer(cMethod))
	cParams := C.CString(params)
	defer C.free(unsafe.Pointer(cParams))

	p := C.tcb_json_request(l.jsonRequest, C.uint32_t(ctx),
		cMethod, C.uint32_t(len(method)),
		cParams, C.uint32_t(len(params)))
	return l.responses.put(p)
}

// ReadJSONResponse copies both strings out of the native buffer. An unknown
// handle yields an empty payload, matching the native null-pointer path.
func (l *Library) ReadJSONResponse(h Response) Payload {
	p, ok := l.responses.get(h)
	if !ok || p == nil {
		return Payload{}
	}
	r := C.tcb_read_json_response(l.readJSONResponse, p)
	return Payload{
		Result: interopString(r.result_json),
		Error:  interopString(r.error_json),
	}
}

// DestroyJSONResponse releases the native buffer. Unknown handles are ignored
// so a second destroy never reaches the native free.
func (l *Library) DestroyJSONResponse(h Response) {
	p, ok := l.responses.take(h)
	if !ok {
		return
	}
	C.tcb_destroy_json_response(l.destroyJSONResponse, p)
}

// Outstanding reports how many responses have been issued but not destroyed.
func (l *Library) Outstanding() int {
	return l.responses.len()
}

func interopString(s C.tc_string_t) string {
	if s.content == nil || s.len == 0 {
		return ""
	}
	return C.GoStringN(s.content, C.int(s.len))
}
