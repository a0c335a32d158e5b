// Package routefile loads router configurations from YAML.
//
//	stack_capacity: 8
//	max_params: 4
//	routes:
//	  - name: home
//	    pattern: /
//	    component: home
//	  - pattern: /users/:id
//	    component: user
//
// Components are resolved by name when the file is turned into a
// router.Config:
//
//	f, err := routefile.LoadFile("routes.yaml")
//	cfg, err := routefile.Config(f, map[string]router.Factory[Screen]{
//		"home": homeFactory,
//		"user": userFactory,
//	})
//	r, err := router.New(cfg)
package routefile
