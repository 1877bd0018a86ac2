package twin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newDittoServer(t *testing.T) (*httptest.Server, map[string]map[string]interface{}) {
	things := make(map[string]map[string]interface{})

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/2/policies/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/api/2/search/things", func(w http.ResponseWriter, r *http.Request) {
		items := make([]map[string]interface{}, 0, len(things))
		for id := range things {
			items = append(items, map[string]interface{}{"thingId": id})
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"items": items})
	})
	mux.HandleFunc("/api/2/things/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/2/things/")
		id = strings.TrimSuffix(id, "/features")

		switch r.Method {
		case http.MethodPut:
			var body map[string]interface{}
			json.NewDecoder(r.Body).Decode(&body)
			things[id] = body
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			thing, ok := things[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(thing)
		case http.MethodDelete:
			delete(things, id)
			w.WriteHeader(http.StatusNoContent)
		}
	})

	return httptest.NewServer(mux), things
}

// TestDittoBackendCRUD 测试Ditto后端的实体CRUD
func TestDittoBackendCRUD(t *testing.T) {
	server, things := newDittoServer(t)
	defer server.Close()

	backend, err := NewDittoBackend(DittoConfig{URL: server.URL, Username: "ditto", Password: "ditto"})
	if err != nil {
		t.Fatalf("创建Ditto后端失败: %v", err)
	}

	if err := backend.CreateThing("v_0", map[string]interface{}{"type": "vehicle"}, map[string]interface{}{}); err != nil {
		t.Fatalf("创建Thing失败: %v", err)
	}
	if len(things) != 1 {
		t.Errorf("期望服务端保存 1 个Thing,实际 %d", len(things))
	}

	if err := backend.UpdateFeatures("v_0", map[string]interface{}{"position": map[string]interface{}{}}); err != nil {
		t.Errorf("更新特征失败: %v", err)
	}

	if err := backend.DeleteThing("v_0"); err != nil {
		t.Errorf("删除Thing失败: %v", err)
	}
	if len(things) != 0 {
		t.Errorf("删除后期望 0 个Thing,实际 %d", len(things))
	}
}

// TestDittoNamespacePrefix 测试命名空间前缀的添加与剥离
func TestDittoNamespacePrefix(t *testing.T) {
	server, things := newDittoServer(t)
	defer server.Close()

	backend, err := NewDittoBackend(DittoConfig{URL: server.URL, Namespace: "org.eclipse.ditto"})
	if err != nil {
		t.Fatalf("创建Ditto后端失败: %v", err)
	}

	backend.CreateThing("RSU_1", map[string]interface{}{}, map[string]interface{}{})
	if _, ok := things["org.eclipse.ditto:RSU_1"]; !ok {
		t.Error("服务端应以带命名空间的ID保存Thing")
	}

	// 读取时对外隐藏命名空间
	thing, ok := backend.GetThing("RSU_1")
	if !ok {
		t.Fatal("读取Thing失败")
	}
	if thing.ThingID != "RSU_1" {
		t.Errorf("ThingID期望剥离前缀为 RSU_1,实际 %s", thing.ThingID)
	}
}

// TestSelectBackendFallback 测试Ditto不可达时回退到内存后端
func TestSelectBackendFallback(t *testing.T) {
	backend := SelectBackend(DittoConfig{URL: "http://127.0.0.1:1"})
	if backend.Name() != "memory" {
		t.Errorf("不可达时期望回退到内存后端,实际 %s", backend.Name())
	}

	// 回退后端必须可用
	if err := backend.CreateThing("v_0", nil, nil); err != nil {
		t.Errorf("内存后端创建实体失败: %v", err)
	}
}

// TestSelectBackendDitto 测试Ditto可达时选择外部后端
func TestSelectBackendDitto(t *testing.T) {
	server, _ := newDittoServer(t)
	defer server.Close()

	backend := SelectBackend(DittoConfig{URL: server.URL})
	if backend.Name() != "Eclipse Ditto" {
		t.Errorf("期望选择Eclipse Ditto后端,实际 %s", backend.Name())
	}
}
