package navtree

// DefaultMenu is the dashboard's built-in sidebar menu.
func DefaultMenu() []Spec {
	return []Spec{
		{ID: 1, Name: "Dashboard", Path: "/", Icon: "dashboard"},
		{
			ID: 2, Name: "Three Js", Icon: "category",
			Children: []Spec{
				{
					ID: 21, Name: "Geometries", Icon: "transaction",
					Children: []Spec{
						{ID: 211, Name: "Active Geometries", Path: "/dashboard/geometries", Icon: "transaction"},
						{ID: 212, Name: "Active Camera", Path: "/dashboard/camera", Icon: "transaction"},
					},
				},
				{
					ID: 22, Name: "Materials", Icon: "transaction",
					Children: []Spec{
						{ID: 221, Name: "All Materials", Path: "/dashboard/materials", Icon: "transaction"},
						{ID: 222, Name: "Common Materials", Path: "/dashboard/common-materials", Icon: "transaction"},
						{ID: 223, Name: "Lights", Path: "/dashboard/lights", Icon: "transaction"},
					},
				},
			},
		},
		{
			ID: 3, Name: "Object3D", Icon: "transaction",
			Children: []Spec{
				{ID: 31, Name: "All Object3D", Path: "/dashboard/object-3d", Icon: "transaction"},
				{ID: 331, Name: "Object 3D Hierarchy", Path: "/dashboard/object-3d-hierarchy", Icon: "transaction"},
				{
					ID: 32, Name: "Hierarchy", Icon: "transaction",
					Children: []Spec{
						{ID: 321, Name: "Add Branch", Path: "/branches/manage/add", Icon: "transaction"},
						{ID: 322, Name: "Branch Settings", Path: "/branches/manage/settings", Icon: "transaction"},
					},
				},
			},
		},
		{ID: 10, Name: "EnvironmentMaps", Path: "/dashboard/environment-maps", Icon: "student"},
		{ID: 5, Name: "Renderer", Path: "/dashboard/renderer", Icon: "student"},
		{ID: 9, Name: "Shadows", Path: "/dashboard/shadows", Icon: "student"},
	}
}
